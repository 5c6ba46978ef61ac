package main

import (
	"os"
	"os/user"

	flag "github.com/spf13/pflag"

	"github.com/viktoryBurm/vfsh"
	"github.com/viktoryBurm/vfsh/config"
	"github.com/viktoryBurm/vfsh/internal/shell"
	"github.com/viktoryBurm/vfsh/internal/util"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		vfsPath    string
		scriptPath string
		verbose    int
	)
	flag.StringVarP(&configPath, "config", "c", "", "Path to config override file (YAML or JSON)")
	flag.StringVarP(&vfsPath, "vfs", "f", "", "Path to the VFS document. Omit to use the built-in tree.")
	flag.StringVarP(&scriptPath, "script", "s", "", "Path to a startup script of shell commands, one per line")
	flag.IntVarP(&verbose, "verbose", "v", config.DefaultVerbose,
		"Log verbosity level between 1 (error) and 5 (trace). Default is 3 (info).")
	flag.Parse()

	// Initialize logger
	util.InitializeLogger(config.VerboseToLevel(verbose))
	logger := util.GetLogger("main")

	// Build the session config: defaults, then config file, then flags
	var override *config.ConfigOverride
	if configPath != "" {
		var err error
		override, err = config.LoadConfigOverrideFile(configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("config", configPath).Msg("Failed to load config file")
		}
	}
	cfg := config.NewConfig(override)
	cfg.LogLvl = config.VerboseToLevel(verbose)
	if vfsPath != "" {
		cfg.VFSPath = vfsPath
	}
	if scriptPath != "" {
		cfg.ScriptPath = scriptPath
	}

	// Prompt identity comes from the environment unless the config file
	// pinned it; the VFS core itself never inspects the environment.
	if override == nil || override.Username == nil {
		if u, err := user.Current(); err == nil && u.Username != "" {
			cfg.Username = u.Username
		}
	}
	if override == nil || override.Hostname == nil {
		if host, err := os.Hostname(); err == nil && host != "" {
			cfg.Hostname = host
		}
	}

	logger.Info().
		Str("vfs", cfg.VFSPath).
		Str("script", cfg.ScriptPath).
		Int("verbose", verbose).
		Msg("Shell emulator initializing")

	// Load the VFS tree, falling back to the built-in default on any
	// load failure so the session always starts.
	var root *vfsh.Dir
	if cfg.VFSPath != "" {
		var err error
		root, err = vfsh.LoadFile(cfg.VFSPath)
		if err != nil {
			logger.Error().Err(err).Str("vfs", cfg.VFSPath).Msg("Failed to load VFS document, using default tree")
			root = vfsh.DefaultTree()
		}
	} else {
		logger.Warn().Msg("No VFS document provided, using default tree")
		root = vfsh.DefaultTree()
	}

	fs := vfsh.New(root)
	sess := shell.NewSession(fs, cfg, os.Stdin, os.Stdout)
	sess.Run()

	logger.Info().Msg("Session ended")
}
