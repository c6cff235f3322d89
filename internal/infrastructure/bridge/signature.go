package bridge

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// Headers added to signed requests.
const (
	HeaderTimestamp   = "X-Timestamp"
	HeaderFingerprint = "X-Device-Fingerprint"
	HeaderSignature   = "X-Client-Signature"
)

const signedPathMarker = "/base_api"

// ErrUnsignedRequest is returned when a request must be signed but cannot be.
var ErrUnsignedRequest = errors.New("request could not be signed")

// Signer produces the verification headers for bridged requests.
type Signer struct {
	key         *rsa.PublicKey
	fingerprint string
	now         func() time.Time
	random      io.Reader
}

// NewSigner creates a signer for key and the device fingerprint.
func NewSigner(key *rsa.PublicKey, fingerprint string) *Signer {
	return &Signer{
		key:         key,
		fingerprint: fingerprint,
		now:         time.Now,
		random:      rand.Reader,
	}
}

// LoadPublicKey reads a PEM encoded PKIX or PKCS#1 RSA public key.
func LoadPublicKey(path string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signing key: %w", err)
	}
	return ParsePublicKey(data)
}

// ParsePublicKey decodes a PEM encoded RSA public key.
func ParsePublicKey(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("signing key: no PEM block found")
	}

	switch block.Type {
	case "RSA PUBLIC KEY":
		return x509.ParsePKCS1PublicKey(block.Bytes)
	default:
		pub, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("signing key: %w", err)
		}
		key, ok := pub.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("signing key: expected RSA key, got %T", pub)
		}
		return key, nil
	}
}

// SignedPath returns the part of rawURL covered by the signature: everything
// after the /base_api marker, always starting with a slash. URLs without the
// marker are signed whole.
func SignedPath(rawURL string) string {
	path := rawURL
	if idx := strings.Index(rawURL, signedPathMarker+"/"); idx >= 0 {
		path = rawURL[idx+len(signedPathMarker):]
	} else if strings.Contains(rawURL, signedPathMarker) {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// SignatureData builds "timestamp|fingerprint|pathhash" where pathhash is the
// first 16 hex chars of sha256(SignedPath(rawURL)).
func SignatureData(timestamp, fingerprint, rawURL string) string {
	sum := sha256.Sum256([]byte(SignedPath(rawURL)))
	return timestamp + "|" + fingerprint + "|" + hex.EncodeToString(sum[:])[:16]
}

// Sign returns the verification headers for rawURL.
func (s *Signer) Sign(rawURL string) (entity.Headers, error) {
	timestamp := s.now().UTC().Format(time.RFC3339)
	data := SignatureData(timestamp, s.fingerprint, rawURL)

	encrypted, err := rsa.EncryptPKCS1v15(s.random, s.key, []byte(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsignedRequest, err)
	}

	return entity.Headers{
		HeaderTimestamp:   timestamp,
		HeaderFingerprint: s.fingerprint,
		HeaderSignature:   base64.StdEncoding.EncodeToString(encrypted),
	}, nil
}
