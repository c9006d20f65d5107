package cmd

import (
	"context"
	"fmt"
	"os"

	internalApp "github.com/haierkeys/daily-note-link-service/internal/app"
	"github.com/haierkeys/daily-note-link-service/pkg/fileurl"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type retroFlags struct {
	dir    string // Project root directory // 项目根目录
	config string // Specified configuration file path // 指定要使用的配置文件路径
}

func init() {
	retroEnv := new(retroFlags)

	var retroCommand = &cobra.Command{
		Use:   "retro [-c config_file] [-d working_dir]",
		Short: "Rebuild daily notes for all existing vault notes by modification date",
		Run: func(cmd *cobra.Command, args []string) {
			if len(retroEnv.dir) > 0 {
				if err := os.Chdir(retroEnv.dir); err != nil {
					bootstrapLogger.Error("failed to change the current working directory", zap.Error(err))
					return
				}
			}

			if len(retroEnv.config) <= 0 {
				if fileurl.IsExist("config/config-dev.yaml") {
					retroEnv.config = "config/config-dev.yaml"
				} else if fileurl.IsExist("config.yaml") {
					retroEnv.config = "config.yaml"
				} else {
					retroEnv.config = "config/config.yaml"
				}
			}

			appConfig, configRealpath, err := internalApp.LoadConfig(retroEnv.config)
			if err != nil {
				bootstrapLogger.Error("failed to load config", zap.Error(err))
				return
			}
			bootstrapLogger.Info("config loaded", zap.String("path", configRealpath))

			s := &Server{config: appConfig}
			if err := initLoggerWithConfig(s, appConfig); err != nil {
				bootstrapLogger.Error("initLogger", zap.Error(err))
				return
			}

			if err := initStorageWithConfig(appConfig); err != nil {
				s.logger.Error("initStorage", zap.Error(err))
				return
			}

			db, err := initDatabaseWithConfig(appConfig)
			if err != nil {
				s.logger.Error("initDatabase", zap.Error(err))
				return
			}

			app, err := internalApp.NewApp(appConfig, s.logger, db)
			if err != nil {
				s.logger.Error("failed to create app container", zap.Error(err))
				return
			}
			defer func() {
				if err := app.Close(); err != nil {
					s.logger.Error("failed to close app container", zap.Error(err))
				}
			}()

			result, err := app.DailyNoteService.Retroactive(context.Background())
			if err != nil {
				s.logger.Error("retroactive pass failed", zap.Error(err))
				return
			}

			s.logger.Info("retroactive pass finished",
				zap.Int("dates_processed", result.DatesProcessed),
				zap.Int("dates_failed", result.DatesFailed),
				zap.Int("files_linked", result.FilesLinked),
			)
			fmt.Printf("retroactive pass finished: %d dates processed, %d failed, %d files linked\n",
				result.DatesProcessed, result.DatesFailed, result.FilesLinked)
			for _, d := range result.FailedDates {
				fmt.Printf("  failed: %s\n", d)
			}
		},
	}

	rootCmd.AddCommand(retroCommand)
	fs := retroCommand.Flags()
	fs.StringVarP(&retroEnv.dir, "dir", "d", "", "run dir")
	fs.StringVarP(&retroEnv.config, "config", "c", "", "config file")
}
