// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/adapter"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/crypto"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/logger"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/srp"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/store"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/utils"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

const minPasswordLength = 8

type clientAuthService struct {
	suite      crypto.CipherSuite
	keys       ClientKeyService
	localStore store.SessionStore
	adapter    adapter.RelayAdapter
	log        *logger.Logger
	iterations int
}

// NewClientAuthService wires registration, login and session teardown on top
// of the key lifecycle manager. The password never leaves this service in
// any recoverable form: the relay sees only the SRP verifier and the sealed
// key blobs.
func NewClientAuthService(suite crypto.CipherSuite, keys ClientKeyService, localStore store.SessionStore, relayAdapter adapter.RelayAdapter, log *logger.Logger) ClientAuthService {
	return &clientAuthService{
		suite:      suite,
		keys:       keys,
		localStore: localStore,
		adapter:    relayAdapter,
		log:        log,
		iterations: crypto.MinMasterKeyIterations,
	}
}

// Register implements [ClientAuthService]. The freshly generated keypairs
// are sealed under the password-derived master key before anything is sent;
// registration is followed by a full SRP login to obtain the session token.
func (a *clientAuthService) Register(ctx context.Context, handle, password string) error {
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}

	salt, err := a.suite.GenerateSalt()
	if err != nil {
		return err
	}
	kdf := models.KDFParams{Salt: salt, Iterations: a.iterations}
	masterKey := a.suite.DeriveKey(password, kdf.Salt, kdf.Iterations)
	defer zeroBytes(masterKey)

	identityPub, identityPriv, err := a.suite.GenerateIdentityKeyPair()
	if err != nil {
		return err
	}
	transportPriv, err := a.suite.GenerateTransportKeyPair()
	if err != nil {
		return err
	}

	identityPrivDER, err := crypto.MarshalPrivateKey(identityPriv)
	if err != nil {
		return err
	}
	identityPubDER, err := crypto.MarshalPublicKey(identityPub)
	if err != nil {
		return err
	}
	transportPrivDER, err := crypto.MarshalPrivateKey(transportPriv)
	if err != nil {
		return err
	}
	transportPubDER, err := crypto.MarshalPublicKey(&transportPriv.PublicKey)
	if err != nil {
		return err
	}

	encIdentity, err := a.suite.AEADEncrypt(masterKey, identityPrivDER)
	if err != nil {
		return err
	}
	encTransport, err := a.suite.AEADEncrypt(masterKey, transportPrivDER)
	if err != nil {
		return err
	}

	srpSalt, err := srp.NewSalt()
	if err != nil {
		return err
	}
	verifier := srp.ComputeVerifier(handle, password, srpSalt)

	_, err = a.adapter.Register(ctx, models.RegisterRequest{
		Handle:                handle,
		KDF:                   kdf,
		PublicIdentityKey:     identityPubDER,
		PublicTransportKey:    transportPubDER,
		EncryptedIdentityKey:  encIdentity,
		EncryptedTransportKey: encTransport,
		SRPSalt:               srpSalt,
		SRPVerifier:           verifier,
	})
	if err != nil {
		if errors.Is(err, adapter.ErrConflict) {
			return ErrUsernameTaken
		}
		return mapAdapterError(err)
	}

	a.log.Info().Str("handle", handle).Msg("account registered")

	return a.Login(ctx, handle, password)
}

// Login implements [ClientAuthService]. The server proof M2 is verified
// before any received key material is trusted; a missing or wrong M2 aborts
// the session outright.
func (a *clientAuthService) Login(ctx context.Context, handle, password string) error {
	session, err := srp.NewClientSession(handle, password)
	if err != nil {
		return err
	}

	start, err := a.adapter.SRPStart(ctx, models.SRPStartRequest{
		Handle: handle,
		A:      session.A(),
	})
	if err != nil {
		return mapAdapterError(err)
	}

	if err := session.SetServerPublic(start.Salt, start.B); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	m1, err := session.ComputeM1()
	if err != nil {
		return err
	}

	verify, err := a.adapter.SRPVerify(ctx, models.SRPVerifyRequest{
		Handle: handle,
		A:      session.A(),
		M1:     m1,
	})
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return ErrInvalidCredentials
		}
		return mapAdapterError(err)
	}

	if err := session.VerifyServerProof(verify.M2); err != nil {
		return fmt.Errorf("%w: %v", ErrUnableToVerifyServerProof, err)
	}

	masterKey := a.suite.DeriveKey(password, verify.KDF.Salt, verify.KDF.Iterations)
	defer zeroBytes(masterKey)

	record := models.SessionRecord{
		Handle:                handle,
		KDF:                   verify.KDF,
		EncryptedIdentityKey:  verify.EncryptedIdentityKey,
		EncryptedTransportKey: verify.EncryptedTransportKey,
		PublicIdentityKey:     verify.PublicIdentityKey,
		PublicTransportKey:    verify.PublicTransportKey,
		Token:                 verify.Token,
		LastRotatedAt:         time.Now(),
	}
	if err := a.keys.InstallSession(ctx, record, masterKey); err != nil {
		return err
	}

	a.log.Info().Str("handle", handle).Msg("logged in")
	return nil
}

// RestoreSession implements [ClientAuthService]. It rehydrates the key
// manager from the locally persisted record and master key without touching
// the network, so a restarted client is usable offline.
func (a *clientAuthService) RestoreSession(ctx context.Context) error {
	recordJSON, err := a.localStore.Get(ctx, store.KeySessionRecord)
	if err != nil {
		if errors.Is(err, store.ErrBlobNotFound) {
			return a.failRestore(ctx, ErrSessionInvalid)
		}
		return a.failRestore(ctx, err)
	}
	masterKey, err := a.localStore.Get(ctx, store.KeyMasterKey)
	if err != nil {
		if errors.Is(err, store.ErrBlobNotFound) {
			return a.failRestore(ctx, ErrSessionInvalid)
		}
		return a.failRestore(ctx, err)
	}
	defer zeroBytes(masterKey)

	var record models.SessionRecord
	if err := json.Unmarshal(recordJSON, &record); err != nil {
		return a.failRestore(ctx, fmt.Errorf("%w: %v", ErrSessionInvalid, err))
	}

	if utils.IsJWTExpired(record.Token, time.Now()) {
		return a.failRestore(ctx, fmt.Errorf("%w: session token expired", ErrSessionInvalid))
	}
	if handle, err := utils.ParseHandleFromJWT(record.Token); err != nil || handle != record.Handle {
		return a.failRestore(ctx, fmt.Errorf("%w: session token does not match handle", ErrSessionInvalid))
	}

	if err := a.keys.InstallSession(ctx, record, masterKey); err != nil {
		return a.failRestore(ctx, errors.Join(ErrSessionInvalid, err))
	}

	a.log.Info().Str("handle", record.Handle).Msg("session restored")
	return nil
}

// failRestore tears the session down completely before reporting the failure.
// A missing master key or an undecryptable record means the persisted material
// is useless; leaving it behind would make every later restore fail the same
// way instead of falling back to a fresh login.
func (a *clientAuthService) failRestore(ctx context.Context, err error) error {
	if clearErr := a.keys.Clear(ctx); clearErr != nil {
		a.log.Warn().Err(clearErr).Msg("clear session state after failed restore")
	}
	return err
}

// Logout implements [ClientAuthService]. Key material is cleared
// synchronously before the relay hears anything; the relay call is best
// effort and reuses the token captured ahead of the teardown.
func (a *clientAuthService) Logout(ctx context.Context) error {
	token := a.adapter.Token()
	clearErr := a.keys.Clear(ctx)

	if token != "" {
		a.adapter.SetToken(token)
		if err := a.adapter.Logout(ctx); err != nil {
			a.log.Warn().Err(err).Msg("relay logout failed")
		}
		a.adapter.SetToken("")
	}
	return clearErr
}

// DeleteAccount implements [ClientAuthService]. Same ordering as Logout:
// keys are cleared before the remote delete runs. A relay failure is
// reported so the caller knows the account still exists remotely, but it
// never resurrects local state.
func (a *clientAuthService) DeleteAccount(ctx context.Context) error {
	token := a.adapter.Token()
	clearErr := a.keys.Clear(ctx)

	a.adapter.SetToken(token)
	err := a.adapter.DeleteAccount(ctx)
	a.adapter.SetToken("")
	if err != nil {
		return errors.Join(mapAdapterError(err), clearErr)
	}
	return clearErr
}
