package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"puzzlebox.dev/pkg/puzzlebox/internal/domain"
	"puzzlebox.dev/pkg/puzzlebox/internal/domain/cubes"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "puzzlebox"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	logFileFlagName     = "log-file"
	verboseFlagName     = "verbose"
	partFlagName        = "part"
	inputFlagName       = "input"
	expectFlagName      = "expect"
	runParallelFlagName = "parallel"

	runParallelConfigKey = "run.parallel"
	runExpectConfigKey   = "run.expect"
	inputsConfigKey      = "inputs"
	schematicWidthKey    = "schematic.width"
	cubeLimitRedKey      = "cubes.limits.red"
	cubeLimitGreenKey    = "cubes.limits.green"
	cubeLimitBlueKey     = "cubes.limits.blue"

	defaultOutput         = ""
	defaultRunParallel    = 1
	defaultSchematicWidth = 0

	envPrefix = "PUZZLEBOX"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".puzzlebox.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		// A missing or unreadable config falls back to defaults.
		return
	}
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultOutput)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(runExpectConfigKey, "")
	viper.SetDefault(inputsConfigKey, map[string]string{})

	viper.SetDefault(schematicWidthKey, defaultSchematicWidth)
	viper.SetDefault(cubeLimitRedKey, cubes.DefaultLimits.Red)
	viper.SetDefault(cubeLimitGreenKey, cubes.DefaultLimits.Green)
	viper.SetDefault(cubeLimitBlueKey, cubes.DefaultLimits.Blue)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// solverConfig reads the puzzle tuning keys.
func solverConfig() domain.SolverConfig {
	return domain.SolverConfig{
		SchematicWidth: viper.GetInt(schematicWidthKey),
		CubeLimits: cubes.Limits{
			Red:   viper.GetUint64(cubeLimitRedKey),
			Green: viper.GetUint64(cubeLimitGreenKey),
			Blue:  viper.GetUint64(cubeLimitBlueKey),
		},
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels, e.g. -4 for debug.
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
