// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

func TestEnvelopeCodec_SealOpen_RoundTrip(t *testing.T) {
	suite := NewCipherSuite()
	codec := NewEnvelopeCodec(suite)

	recipient, err := suite.GenerateTransportKeyPair()
	require.NoError(t, err)

	plaintext := []byte(`{"kind":"chat","body":"hello bob"}`)
	env, err := codec.Seal(plaintext, &recipient.PublicKey)
	require.NoError(t, err)

	assert.NotEmpty(t, env.WrappedKey)
	assert.NotEmpty(t, env.IV)
	assert.NotEmpty(t, env.Ciphertext)
	assert.False(t, env.Legacy())

	got, err := codec.Open(env, recipient)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestEnvelopeCodec_Seal_LargePayload(t *testing.T) {
	// direct RSA-2048 OAEP caps out below 256 bytes; the hybrid form must
	// carry payloads far past that ceiling
	suite := NewCipherSuite()
	codec := NewEnvelopeCodec(suite)

	recipient, err := suite.GenerateTransportKeyPair()
	require.NoError(t, err)

	plaintext := make([]byte, 64*1024)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}

	env, err := codec.Seal(plaintext, &recipient.PublicKey)
	require.NoError(t, err)

	got, err := codec.Open(env, recipient)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestEnvelopeCodec_Open_WrongRecipient(t *testing.T) {
	suite := NewCipherSuite()
	codec := NewEnvelopeCodec(suite)

	recipient, err := suite.GenerateTransportKeyPair()
	require.NoError(t, err)
	eavesdropper, err := suite.GenerateTransportKeyPair()
	require.NoError(t, err)

	env, err := codec.Seal([]byte("for alice only"), &recipient.PublicKey)
	require.NoError(t, err)

	_, err = codec.Open(env, eavesdropper)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestEnvelopeCodec_Open_TamperedCiphertext(t *testing.T) {
	suite := NewCipherSuite()
	codec := NewEnvelopeCodec(suite)

	recipient, err := suite.GenerateTransportKeyPair()
	require.NoError(t, err)

	env, err := codec.Seal([]byte("payload"), &recipient.PublicKey)
	require.NoError(t, err)
	env.Ciphertext[0] ^= 0xFF

	_, err = codec.Open(env, recipient)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestEnvelopeCodec_Open_LegacyDirectRSA(t *testing.T) {
	suite := NewCipherSuite()
	codec := NewEnvelopeCodec(suite)

	recipient, err := suite.GenerateTransportKeyPair()
	require.NoError(t, err)

	// an old client: plaintext encrypted directly with RSA, no wrapped key
	plaintext := []byte("short legacy message")
	direct, err := suite.AsymmetricEncrypt(&recipient.PublicKey, plaintext)
	require.NoError(t, err)

	env := models.TransitEnvelope{Ciphertext: direct}
	require.True(t, env.Legacy())

	got, err := codec.Open(env, recipient)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestEnvelopeCodec_Open_LegacyWrongKey(t *testing.T) {
	suite := NewCipherSuite()
	codec := NewEnvelopeCodec(suite)

	recipient, err := suite.GenerateTransportKeyPair()
	require.NoError(t, err)
	other, err := suite.GenerateTransportKeyPair()
	require.NoError(t, err)

	direct, err := suite.AsymmetricEncrypt(&recipient.PublicKey, []byte("legacy"))
	require.NoError(t, err)

	_, err = codec.Open(models.TransitEnvelope{Ciphertext: direct}, other)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestEnvelopeCodec_Seal_AlwaysHybrid(t *testing.T) {
	suite := NewCipherSuite()
	codec := NewEnvelopeCodec(suite)

	recipient, err := suite.GenerateTransportKeyPair()
	require.NoError(t, err)

	// even a tiny payload that would fit direct RSA goes out hybrid
	env, err := codec.Seal([]byte("x"), &recipient.PublicKey)
	require.NoError(t, err)
	assert.False(t, env.Legacy())
}
