package main

import (
	"os"

	"github.com/openstack-i18n-kr/zanata2weblate/internal/cli"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/i18n"
)

// main はアプリケーションのエントリーポイント
func main() {
	i18n.Initialize()

	app := cli.NewApp()
	exitCode := app.Run(os.Args)
	os.Exit(exitCode)
}
