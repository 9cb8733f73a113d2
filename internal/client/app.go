package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/adapter"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/config"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/logger"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/service"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/store"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/workers"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	relay    adapter.RelayAdapter
	log      *logger.Logger
	in       *bufio.Reader
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	localStore, err := store.NewSQLiteSessionStore(cfg.Storage.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("create session store: %w", err)
	}

	relay := adapter.NewHTTPRelayAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Relay.BaseURL,
		Timeout: cfg.Relay.RequestTimeout,
	}, log)

	hooks := service.SyncHooks{
		OnMessage: func(ctx context.Context, msg models.PeerMessage) {
			fmt.Printf("[%s] %s: %s\n", msg.SentAt.Local().Format("15:04"), msg.Sender, msg.Body)
		},
		OnSessionRevoked: func(ctx context.Context, event models.SessionRevokedEvent) {
			if event.Current {
				fmt.Println("this session was revoked; please log in again")
			}
		},
	}

	return &App{
		cfg:      cfg,
		services: service.NewClientServices(localStore, relay, hooks, log),
		relay:    relay,
		log:      log,
		in:       bufio.NewReader(os.Stdin),
	}, nil
}

// Run implements [Client]. It restores the persisted session or walks the
// user through login/registration, then keeps the sync stream and the
// rotation job running until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.services.AuthService.RestoreSession(ctx); err != nil {
		if !errors.Is(err, service.ErrSessionInvalid) {
			return fmt.Errorf("restore session: %w", err)
		}
		if err := a.loginFlow(ctx); err != nil {
			return err
		}
	}

	frames, err := a.relay.OpenSyncStream(ctx)
	if err != nil {
		return fmt.Errorf("open sync stream: %w", err)
	}

	background := workers.New(workers.WorkerFunc(func(ctx context.Context) {
		a.services.Dispatcher.Run(ctx, frames)
	}))
	background.Run(ctx)

	a.services.RotationJob.Start(ctx, a.cfg.Rotation.CheckInterval, a.cfg.Rotation.Threshold)
	defer a.services.RotationJob.Stop()

	<-ctx.Done()
	background.Wait()
	return nil
}

func (a *App) loginFlow(ctx context.Context) error {
	for {
		fmt.Print("handle: ")
		handle, err := a.in.ReadString('\n')
		if err != nil {
			return err
		}
		handle = strings.TrimSpace(handle)

		fmt.Print("password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return err
		}

		err = a.services.AuthService.Login(ctx, handle, string(password))
		switch {
		case err == nil:
			return nil
		case errors.Is(err, service.ErrInvalidCredentials):
			fmt.Print("login failed, register a new account? [y/N]: ")
			answer, readErr := a.in.ReadString('\n')
			if readErr != nil {
				return readErr
			}
			if strings.EqualFold(strings.TrimSpace(answer), "y") {
				if regErr := a.services.AuthService.Register(ctx, handle, string(password)); regErr != nil {
					fmt.Printf("registration failed: %v\n", regErr)
					continue
				}
				return nil
			}
		default:
			return err
		}
	}
}
