package main

import (
	"github.com/mj1618/kakao-a11y/cmd"
	_ "github.com/mj1618/kakao-a11y/internal/platform/win32"
)

func main() {
	cmd.Execute()
}
