package app

import (
	"sync"
)

type App struct {
	Config
}

var a *App

var o = sync.Once{}

var initErr error

func initApp() {
	o.Do(func() {
		cfg, err := loadConfig()
		if err != nil {
			initErr = err
			return
		}

		a = &App{Config: cfg}
	})
}

func GetApp() (*App, error) {
	initApp()

	return a, initErr
}
