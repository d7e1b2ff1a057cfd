package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/antoniofonseca/keepactive-msteams/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(styleBrand.Render("keepactive") + " " + styleVersion.Render(buildinfo.Version))
		fmt.Println(styleLabel.Render("  Commit:") + " " + buildinfo.CommitHash)
		fmt.Println(styleLabel.Render("  Built:") + " " + buildinfo.BuildDate)
		fmt.Println(styleLabel.Render("  OS/Arch:") + " " + runtime.GOOS + "/" + runtime.GOARCH)
		fmt.Println(styleLabel.Render("  Go:") + " " + runtime.Version())
	},
}
