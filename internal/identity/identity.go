package identity

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid id token")
)

// Identity is the verified subject returned by the auth provider.
type Identity struct {
	UID     string
	Email   string
	Name    string
	Picture string
}

type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

const defaultCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

// FirebaseVerifier validates Firebase ID tokens by checking their RS256
// signature against Google's securetoken certificates.
type FirebaseVerifier struct {
	projectId string
	certsURL  string
	client    *http.Client

	mu         sync.Mutex
	keys       map[string]*rsa.PublicKey
	keysExpiry time.Time
}

// NewFirebaseVerifier reads the service account credentials file only to
// learn the project id; signature checks use Google's public certificates.
func NewFirebaseVerifier(credentialsPath string) (*FirebaseVerifier, error) {
	data, err := os.ReadFile(credentialsPath)

	if err != nil {
		return nil, fmt.Errorf("error reading credentials file: %v", err)
	}

	var credentials struct {
		ProjectId string `json:"project_id"`
	}

	if err := json.Unmarshal(data, &credentials); err != nil {
		return nil, fmt.Errorf("error parsing credentials file: %v", err)
	}

	if credentials.ProjectId == "" {
		return nil, fmt.Errorf("credentials file has no project_id")
	}

	return &FirebaseVerifier{
		projectId: credentials.ProjectId,
		certsURL:  defaultCertsURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type firebaseClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(fmt.Sprintf("https://securetoken.google.com/%s", v.projectId)),
		jwt.WithAudience(v.projectId),
		jwt.WithExpirationRequired(),
	)

	var claims firebaseClaims

	if _, err := parser.ParseWithClaims(idToken, &claims, func(token *jwt.Token) (any, error) {
		kid, ok := token.Header["kid"].(string)

		if !ok {
			return nil, fmt.Errorf("token has no kid header")
		}

		key, err := v.signingKey(ctx, kid)

		if err != nil {
			return nil, err
		}

		return key, nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", ErrInvalidToken)
	}

	return &Identity{
		UID:     claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}

func (v *FirebaseVerifier) signingKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.keys == nil || time.Now().After(v.keysExpiry) {
		keys, maxAge, err := v.fetchKeys(ctx)

		if err != nil {
			return nil, err
		}

		v.keys = keys
		v.keysExpiry = time.Now().Add(maxAge)
	}

	key, ok := v.keys[kid]

	if !ok {
		return nil, fmt.Errorf("no certificate for kid %q", kid)
	}

	return key, nil
}

// fetchKeys downloads the kid -> PEM certificate map. One retry; the
// endpoint is a plain idempotent GET.
func (v *FirebaseVerifier) fetchKeys(ctx context.Context) (map[string]*rsa.PublicKey, time.Duration, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(500 * time.Millisecond):
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			}
		}

		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, v.certsURL, nil)

		if err != nil {
			return nil, 0, fmt.Errorf("error building certs request: %v", err)
		}

		resp, err = v.client.Do(req)

		if err == nil {
			break
		}
	}

	if err != nil {
		return nil, 0, fmt.Errorf("error fetching certs: %v", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("certs endpoint returned status %d", resp.StatusCode)
	}

	var certs map[string]string

	if err := json.NewDecoder(resp.Body).Decode(&certs); err != nil {
		return nil, 0, fmt.Errorf("error decoding certs: %v", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))

	for kid, certPEM := range certs {
		block, _ := pem.Decode([]byte(certPEM))

		if block == nil {
			return nil, 0, fmt.Errorf("error decoding certificate for kid %q", kid)
		}

		cert, err := x509.ParseCertificate(block.Bytes)

		if err != nil {
			return nil, 0, fmt.Errorf("error parsing certificate for kid %q: %v", kid, err)
		}

		key, ok := cert.PublicKey.(*rsa.PublicKey)

		if !ok {
			return nil, 0, fmt.Errorf("certificate for kid %q is not RSA", kid)
		}

		keys[kid] = key
	}

	return keys, cacheMaxAge(resp.Header.Get("Cache-Control")), nil
}

func cacheMaxAge(header string) time.Duration {
	for _, directive := range strings.Split(header, ",") {
		directive = strings.TrimSpace(directive)

		if after, ok := strings.CutPrefix(directive, "max-age="); ok {
			if seconds, err := strconv.Atoi(after); err == nil && seconds > 0 {
				return time.Duration(seconds) * time.Second
			}
		}
	}

	// The endpoint always sets max-age; fall back to a short window if not.
	return time.Minute
}
