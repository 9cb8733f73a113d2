package service

import (
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/adapter"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/crypto"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/logger"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/store"
)

type ClientServices struct {
	KeyService       ClientKeyService
	AuthService      ClientAuthService
	MessagingService ClientMessagingService
	Dispatcher       SyncDispatcher
	RotationJob      RotationJob
}

func NewClientServices(localStore store.SessionStore, relayAdapter adapter.RelayAdapter, hooks SyncHooks, log *logger.Logger) *ClientServices {
	suite := crypto.NewCipherSuite()
	keySvc := NewClientKeyService(suite, localStore, relayAdapter, log)
	authSvc := NewClientAuthService(suite, keySvc, localStore, relayAdapter, log)
	messagingSvc := NewClientMessagingService(suite, keySvc, localStore, relayAdapter, log)

	return &ClientServices{
		KeyService:       keySvc,
		AuthService:      authSvc,
		MessagingService: messagingSvc,
		Dispatcher:       NewSyncDispatcher(keySvc, messagingSvc, hooks, log),
		RotationJob:      NewRotationJob(keySvc, log),
	}
}
