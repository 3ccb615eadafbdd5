package cmd

import (
	"runtime"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  `Show the sand version, build time and Go runtime.`,
		Usage: "sand version",
		Run:   runVersion,
	})
}

func runVersion(env *Env, args []string) error {
	printVersion(env.Stdout)
	env.Printf("go %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if env.Config.Path != "" {
		env.Printf("config %s\n", env.Config.Path)
	}
	return nil
}
