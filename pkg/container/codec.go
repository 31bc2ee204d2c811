// Package container implements the Container Codec component: the
// bit-exact artifact byte format and the two public entry points,
// Seal and Open, that orchestrate pkg/secret, pkg/kdf, and pkg/cipher
// into a single authenticated-encryption round trip.
//
// The frame is salt(16) || nonce || ciphertext || tag, standard
// base64-encoded with padding. The cipher identifier is never embedded in
// the artifact: callers supply it on both Seal and Open, and must track it
// alongside the artifact if they need cipher agility.
package container

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"io"
	"time"

	"github.com/envcrypt/envcrypt/internal/constants"
	"github.com/envcrypt/envcrypt/internal/entropy"
	qerrors "github.com/envcrypt/envcrypt/internal/errors"
	"github.com/envcrypt/envcrypt/pkg/cipher"
	"github.com/envcrypt/envcrypt/pkg/kdf"
	"github.com/envcrypt/envcrypt/pkg/secret"
	"github.com/envcrypt/envcrypt/pkg/telemetry"
)

// randReader is swapped out in tests to exercise RandomSourceUnavailable
// without starving the real system source.
var randReader io.Reader = rand.Reader

// Seal is the context-free form of SealContext, for callers that do not
// need a tracing span.
func Seal(cipherID string, secretBytes, plaintext []byte) ([]byte, error) {
	return SealContext(context.Background(), cipherID, secretBytes, plaintext)
}

// SealContext implements the seal orchestration of the container codec:
//
//  1. Draw a random salt and a cipher-sized random nonce.
//  2. Derive a working key from secretBytes and the salt.
//  3. Seal plaintext under the derived key and nonce.
//  4. Assemble salt || nonce || ciphertext || tag and base64-encode it.
//  5. Zeroize the derived key on every exit path.
//
// cipherID selects the suite via pkg/cipher.ParseSuite; secretBytes is the
// raw, already-parsed secret (see pkg/secret.ParseSecret). The caller
// retains ownership of secretBytes and is responsible for zeroizing it.
func SealContext(ctx context.Context, cipherID string, secretBytes, plaintext []byte) (artifact []byte, err error) {
	_, end := telemetry.StartSpan(ctx, telemetry.SpanSeal, telemetry.Fields{"cipher": cipherID})
	start := time.Now()
	defer func() {
		end(err)
		telemetry.GlobalCollector().RecordSeal(time.Since(start), err)
	}()

	suite, err := cipher.ParseSuite(cipherID)
	if err != nil {
		return nil, err
	}
	c, err := cipher.New(suite)
	if err != nil {
		return nil, err
	}
	if len(secretBytes) == 0 {
		return nil, qerrors.ErrInvalidKey
	}

	salt := make([]byte, constants.SaltSize)
	if _, err := io.ReadFull(randReader, salt); err != nil {
		return nil, qerrors.ErrRandomSourceUnavailable
	}
	if err := entropy.Check(salt); err != nil {
		return nil, err
	}

	nonce := make([]byte, c.NonceSize())
	if _, err := io.ReadFull(randReader, nonce); err != nil {
		return nil, qerrors.ErrRandomSourceUnavailable
	}
	if err := entropy.Check(nonce); err != nil {
		return nil, err
	}

	derivedKey, err := kdf.Derive(secretBytes, salt)
	if err != nil {
		return nil, err
	}
	defer derivedKey.Release()

	ciphertext, tag, err := c.Seal(derivedKey.Bytes(), nonce, plaintext)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext)+len(tag))
	frame = append(frame, salt...)
	frame = append(frame, nonce...)
	frame = append(frame, ciphertext...)
	frame = append(frame, tag...)

	encoded := base64.StdEncoding.EncodeToString(frame)
	return []byte(encoded), nil
}

// Open is the context-free form of OpenContext, for callers that do not
// need a tracing span.
func Open(cipherID string, secretBytes, artifact []byte) ([]byte, error) {
	return OpenContext(context.Background(), cipherID, secretBytes, artifact)
}

// OpenContext implements the open orchestration of the container codec:
//
//  1. Base64-decode the artifact; a decode error is MalformedArtifact.
//  2. Reject artifacts shorter than the selected cipher's minimum frame.
//  3. Split the frame into salt, nonce, ciphertext, and tag by fixed size.
//  4. Derive the working key from secretBytes and the salt.
//  5. Open the ciphertext under the derived key, nonce, and tag.
//  6. Zeroize the derived key; return the plaintext.
//
// MalformedArtifact and AuthenticationFailed are deliberately
// indistinguishable in what they withhold: neither path ever returns a
// partial plaintext, and CBC padding failures are folded into
// AuthenticationFailed alongside MAC failures.
func OpenContext(ctx context.Context, cipherID string, secretBytes, artifact []byte) (plaintext []byte, err error) {
	_, end := telemetry.StartSpan(ctx, telemetry.SpanOpen, telemetry.Fields{"cipher": cipherID})
	start := time.Now()
	defer func() {
		end(err)
		telemetry.GlobalCollector().RecordOpen(time.Since(start), err)
	}()

	suite, err := cipher.ParseSuite(cipherID)
	if err != nil {
		return nil, err
	}
	c, err := cipher.New(suite)
	if err != nil {
		return nil, err
	}
	if len(secretBytes) == 0 {
		return nil, qerrors.ErrInvalidKey
	}

	frame := make([]byte, base64.StdEncoding.DecodedLen(len(artifact)))
	n, decErr := base64.StdEncoding.Decode(frame, artifact)
	if decErr != nil {
		return nil, qerrors.ErrMalformedArtifact
	}
	frame = frame[:n]

	if len(frame) < suite.MinFrameSize() {
		return nil, qerrors.ErrMalformedArtifact
	}

	saltEnd := constants.SaltSize
	nonceEnd := saltEnd + c.NonceSize()
	tagStart := len(frame) - c.TagSize()

	salt := frame[:saltEnd]
	nonce := frame[saltEnd:nonceEnd]
	ciphertext := frame[nonceEnd:tagStart]
	tag := frame[tagStart:]

	derivedKey, err := kdf.Derive(secretBytes, salt)
	if err != nil {
		return nil, err
	}
	defer derivedKey.Release()

	plaintext, err = c.Open(derivedKey.Bytes(), nonce, ciphertext, tag)
	if err != nil {
		return nil, err
	}
	return plaintext, nil
}

// SealSecret behaves like Seal but takes ownership of s and releases it
// before returning, regardless of outcome.
func SealSecret(cipherID string, s *secret.Secret, plaintext []byte) ([]byte, error) {
	defer s.Release()
	return Seal(cipherID, s.Bytes(), plaintext)
}

// OpenSecret behaves like Open but takes ownership of s and releases it
// before returning, regardless of outcome.
func OpenSecret(cipherID string, s *secret.Secret, artifact []byte) ([]byte, error) {
	defer s.Release()
	return Open(cipherID, s.Bytes(), artifact)
}
