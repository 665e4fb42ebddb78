package service

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

type Logger interface {
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Info(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

type (
	Service interface {
		Name() string
		Init() error
		Run(ctx context.Context)
		Stop()
	}
	Services interface {
		AddService(service ...Service)
		Run(ctx context.Context) error
	}
	Manager struct {
		log      Logger
		services []Service
	}
)

func NewManager(log Logger) *Manager {
	return &Manager{log: log}
}

func (s *Manager) AddService(service ...Service) {
	s.services = append(s.services, service...)
}

// Run starts every service and blocks until SIGINT/SIGTERM or ctx is done,
// then stops them in reverse order.
func (s *Manager) Run(ctx context.Context) error {
	s.log.Info("going to start %d services", len(s.services))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	started := make([]Service, 0, len(s.services))
	for _, svc := range s.services {
		if err := svc.Init(); err != nil {
			stopAll(started)
			return fmt.Errorf("init %s: %w", svc.Name(), err)
		}
		started = append(started, svc)
		s.log.Info("service %s started", svc.Name())
		go svc.Run(ctx)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)

	select {
	case <-c:
	case <-ctx.Done():
	}

	s.log.Info("going to stop")
	cancel()
	stopAll(started)
	return nil
}

func stopAll(services []Service) {
	for i := len(services) - 1; i >= 0; i-- {
		services[i].Stop()
	}
}
