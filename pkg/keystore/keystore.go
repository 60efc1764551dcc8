// Package keystore provides encrypted at-rest storage for derived
// cipher keys.
//
// A store is a single JSON file holding named keys, sealed with
// ChaCha20-Poly1305 under a key derived from the store passphrase with
// argon2id. The salt and cost parameters ride in the file, so a store
// opens with nothing but its passphrase.
package keystore

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/rwclarke/rijndael/pkg/secure"
)

const (
	SaltSize = 32
	KeySize  = chacha20poly1305.KeySize
)

// Params are the argon2id cost parameters baked into a store file.
type Params struct {
	Time    uint32 `json:"time"`
	Memory  uint32 `json:"memory"`
	Threads uint8  `json:"threads"`
}

// DefaultParams returns the cost used for new stores: 3 passes over
// 64 MB with 4 lanes.
func DefaultParams() Params {
	return Params{
		Time:    3,
		Memory:  64 * 1024,
		Threads: 4,
	}
}

// StoredKey is one named key held in a store.
type StoredKey struct {
	Name    string    `json:"name"`
	Key     []byte    `json:"key"`
	Bits    int       `json:"bits"`
	Created time.Time `json:"created"`
	Notes   string    `json:"notes,omitempty"`
}

// envelope is the on-disk layout. Everything needed to re-derive the
// sealing key sits next to the ciphertext.
type envelope struct {
	Version    string `json:"version"`
	Salt       []byte `json:"salt"`
	Params     Params `json:"params"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// Store reads and writes one key store file.
type Store struct {
	path   string
	params Params
}

func New(path string) *Store {
	return NewWithParams(path, DefaultParams())
}

func NewWithParams(path string, params Params) *Store {
	return &Store{
		path:   path,
		params: params,
	}
}

func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Save encrypts the keys under the passphrase and writes the store
// file, replacing any previous contents.
func (s *Store) Save(keys []StoredKey, passphrase []byte) error {
	if len(passphrase) == 0 {
		return fmt.Errorf("passphrase cannot be empty")
	}

	plaintext, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("failed to marshal keys: %w", err)
	}
	defer secure.Zero(plaintext)

	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	sealKey := argon2.IDKey(passphrase, salt, s.params.Time, s.params.Memory, s.params.Threads, KeySize)
	defer secure.Zero(sealKey)

	aead, err := chacha20poly1305.New(sealKey)
	if err != nil {
		return fmt.Errorf("failed to create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	env := envelope{
		Version:    "1",
		Salt:       salt,
		Params:     s.params,
		Nonce:      nonce,
		Ciphertext: aead.Seal(nil, nonce, plaintext, nil),
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}

	return nil
}

// Load decrypts the store file and returns its keys. The caller owns
// the key material and should zero it when done.
func (s *Store) Load(passphrase []byte) ([]StoredKey, error) {
	if len(passphrase) == 0 {
		return nil, fmt.Errorf("passphrase cannot be empty")
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse store: %w", err)
	}

	sealKey := argon2.IDKey(passphrase, env.Salt, env.Params.Time, env.Params.Memory, env.Params.Threads, KeySize)
	defer secure.Zero(sealKey)

	aead, err := chacha20poly1305.New(sealKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	if len(env.Nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("malformed store: bad nonce size %d", len(env.Nonce))
	}

	plaintext, err := aead.Open(nil, env.Nonce, env.Ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt store: %w", err)
	}
	defer secure.Zero(plaintext)

	var keys []StoredKey
	if err := json.Unmarshal(plaintext, &keys); err != nil {
		return nil, fmt.Errorf("failed to parse keys: %w", err)
	}

	return keys, nil
}

// Add appends one key to the store, creating the store file if it does
// not exist yet. Names must be unique within a store.
func (s *Store) Add(entry StoredKey, passphrase []byte) error {
	keys, err := s.loadOrEmpty(passphrase)
	if err != nil {
		return err
	}
	defer Zero(keys)

	for _, k := range keys {
		if k.Name == entry.Name {
			return fmt.Errorf("key %q already exists", entry.Name)
		}
	}

	if entry.Created.IsZero() {
		entry.Created = time.Now()
	}

	return s.Save(append(keys, entry), passphrase)
}

// Get returns the named key. Material belonging to other entries is
// wiped before returning.
func (s *Store) Get(name string, passphrase []byte) (StoredKey, error) {
	keys, err := s.Load(passphrase)
	if err != nil {
		return StoredKey{}, err
	}

	var found StoredKey
	ok := false
	for _, k := range keys {
		if !ok && k.Name == name {
			found = k
			ok = true
			continue
		}
		secure.Zero(k.Key)
	}

	if !ok {
		return StoredKey{}, fmt.Errorf("key %q not found", name)
	}

	return found, nil
}

// List returns all keys, newest first.
func (s *Store) List(passphrase []byte) ([]StoredKey, error) {
	keys, err := s.loadOrEmpty(passphrase)
	if err != nil {
		return nil, err
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Created.After(keys[j].Created)
	})

	return keys, nil
}

// Remove deletes the named key from the store.
func (s *Store) Remove(name string, passphrase []byte) error {
	keys, err := s.Load(passphrase)
	if err != nil {
		return err
	}
	defer Zero(keys)

	var remaining []StoredKey
	for _, k := range keys {
		if k.Name != name {
			remaining = append(remaining, k)
		}
	}

	if len(remaining) == len(keys) {
		return fmt.Errorf("key %q not found", name)
	}

	return s.Save(remaining, passphrase)
}

// Delete overwrites the store file with random bytes and removes it.
func (s *Store) Delete() error {
	if !s.Exists() {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read store for deletion: %w", err)
	}

	if _, err := rand.Read(data); err != nil {
		return fmt.Errorf("failed to overwrite store: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to overwrite store: %w", err)
	}

	return os.Remove(s.path)
}

// Zero wipes the key material of every entry.
func Zero(keys []StoredKey) {
	for i := range keys {
		secure.Zero(keys[i].Key)
	}
}

func (s *Store) loadOrEmpty(passphrase []byte) ([]StoredKey, error) {
	if !s.Exists() {
		if len(passphrase) == 0 {
			return nil, fmt.Errorf("passphrase cannot be empty")
		}
		return nil, nil
	}
	return s.Load(passphrase)
}
