package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(getenvDefault("LHOTSE_LOG_LEVEL", "info")); err == nil {
		log.SetLevel(lvl)
	}

	root := &cobra.Command{
		Use:          "lhotse",
		Short:        "Prepare speech training data from manifest files",
		SilenceUsage: true,
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.AddCommand(newCutCommand(log))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
