package cmd

func init() {
	rootCmd.AddCommand(
		NewStartCommand(),
		NewStopCommand(),
		NewStateCommand(),
		NewSettingsCommand(),
		NewLogsCommand(),
		NewScmCommand(),
		NewFunctionsCommand(),
		NewHostKeysCommand(),
		NewJobsCommand(),
		NewInstancesCommand(),
		NewPlanCommand(),
		NewDeleteCommand(),
		NewDeploymentsCommand(),
		NewPublishProfileCommand(),
		NewVersionCommand(),
	)
}
