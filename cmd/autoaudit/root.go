package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:           "autoaudit",
	Short:         "AutoAudit serves a compliance dashboard over audit scan results.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setCommandExecutionContext(commandExecutionContext{
			CommandPath:       cmd.CommandPath(),
			UsesStructuredLog: commandUsesStructuredLogging(cmd),
		})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd, summaryCmd, exportCmd, validateCmd, benchmarksCmd, versionCmd)
}
