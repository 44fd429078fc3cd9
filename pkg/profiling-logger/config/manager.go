package config

import "github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/log"

// Manager
//
//go:generate mockgen -destination=./mocks/mock_Manager.go -package=mocks github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/config Manager
type Manager interface {
	// Load configuration from all files of a folder
	Load(mainConfFolder string) error
	// Get configuration object
	GetConfig() *Config
	// Add a hook called after each successful reload
	AddOnChangeHook(hook func())
}

func NewManager(logger log.Logger) Manager {
	return &managercontext{logger: logger}
}
