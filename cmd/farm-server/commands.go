package main

import (
	"fmt"

	"github.com/darkkaiser/farm-server/internal/config"
	"github.com/darkkaiser/farm-server/internal/pkg/version"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   config.AppName,
		Short: "농장(Farm) 관리 REST API 서버",

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand(), newVersionCommand())

	return root
}

func newServeCommand() *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "API 서버를 시작합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", config.DefaultFilename, "설정 파일 경로")
	cmd.Flags().StringVar(&opts.LogDir, "log-dir", "logs", "로그 파일 저장 디렉토리")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "빌드 정보를 출력합니다",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
		},
	}
}
