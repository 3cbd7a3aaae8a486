package fairness

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"sync"
)

const (
	// hexDigits is how much of the HMAC digest feeds one draw (64 bits)
	hexDigits = 16
	// twoTo64 scales a uint64 into [0,1)
	twoTo64 = 18446744073709551616.0
)

// Source is a provably fair random source. Every draw is
// HMAC-SHA256(serverSeed, "clientSeed:nonce") reduced to [0,1), with the
// nonce advancing by one per draw. Publishing Commitment() before play and
// the server seed afterwards lets anyone replay every draw.
type Source struct {
	mu         sync.Mutex
	serverSeed string
	clientSeed string
	nonce      uint64
}

// Proof identifies the seed and nonce a draw came from
type Proof struct {
	Commitment string `json:"commitment"`
	ClientSeed string `json:"client_seed"`
	Nonce      uint64 `json:"nonce"`
}

// Reveal publishes a retired server seed. Draws is the number of nonces
// used under it, so every nonce below Draws can be replayed.
type Reveal struct {
	ServerSeed     string `json:"server_seed"`
	Commitment     string `json:"commitment"`
	ClientSeed     string `json:"client_seed"`
	Draws          uint64 `json:"draws"`
	NextCommitment string `json:"next_commitment"`
}

// NewSource creates a source starting at nonce 0
func NewSource(serverSeed, clientSeed string) *Source {
	return &Source{serverSeed: serverSeed, clientSeed: clientSeed}
}

// Next returns the next draw with its proof and advances the nonce
func (s *Source) Next() (float64, Proof) {
	s.mu.Lock()
	defer s.mu.Unlock()
	proof := Proof{
		Commitment: Commitment(s.serverSeed),
		ClientSeed: s.clientSeed,
		Nonce:      s.nonce,
	}
	v := Draw(s.serverSeed, s.clientSeed, s.nonce)
	s.nonce++
	return v, proof
}

// Float64 returns the next draw and advances the nonce
func (s *Source) Float64() float64 {
	v, _ := s.Next()
	return v
}

// Rotate retires the current server seed in favour of next and restarts
// the nonce at 0. The returned Reveal is what players need to verify the
// retired draws.
func (s *Source) Rotate(next string) Reveal {
	s.mu.Lock()
	defer s.mu.Unlock()
	reveal := Reveal{
		ServerSeed:     s.serverSeed,
		Commitment:     Commitment(s.serverSeed),
		ClientSeed:     s.clientSeed,
		Draws:          s.nonce,
		NextCommitment: Commitment(next),
	}
	s.serverSeed = next
	s.nonce = 0
	return reveal
}

// Nonce returns the nonce the next draw will use
func (s *Source) Nonce() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nonce
}

// ClientSeed returns the client seed mixed into each draw
func (s *Source) ClientSeed() string {
	return s.clientSeed
}

// Commitment returns the public hash of the active server seed
func (s *Source) Commitment() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Commitment(s.serverSeed)
}

// DeriveSeed returns the server seed for one epoch of a secret master
// seed. Knowing the master and the epoch id reproduces the seed, so a
// seed can still be revealed after the process that used it is gone.
func DeriveSeed(master, epoch string) string {
	mac := hmac.New(sha256.New, []byte(master))
	mac.Write([]byte("epoch:" + epoch))
	return hex.EncodeToString(mac.Sum(nil))
}

// Draw computes the draw for one nonce
func Draw(serverSeed, clientSeed string, nonce uint64) float64 {
	mac := hmac.New(sha256.New, []byte(serverSeed))
	mac.Write([]byte(clientSeed + ":" + strconv.FormatUint(nonce, 10)))
	digest := hex.EncodeToString(mac.Sum(nil))

	n, err := strconv.ParseUint(digest[:hexDigits], 16, 64)
	if err != nil {
		// A hex digest always parses
		return 0
	}
	v := float64(n) / twoTo64
	// Values within half an ulp of 2^64 round up to exactly 1.0
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	return v
}

// Commitment returns the SHA-256 hex digest of a server seed
func Commitment(serverSeed string) string {
	sum := sha256.Sum256([]byte(serverSeed))
	return hex.EncodeToString(sum[:])
}

// VerifyDraw reports whether draw is the value produced for nonce
func VerifyDraw(serverSeed, clientSeed string, nonce uint64, draw float64) bool {
	return Draw(serverSeed, clientSeed, nonce) == draw
}

// VerifyCommitment reports whether a revealed server seed matches its commitment
func VerifyCommitment(serverSeed, commitment string) bool {
	return hmac.Equal([]byte(Commitment(serverSeed)), []byte(commitment))
}

// GenerateSeed creates a random 32-byte hex server seed
func GenerateSeed() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate seed: %w", err)
	}
	return hex.EncodeToString(b), nil
}
