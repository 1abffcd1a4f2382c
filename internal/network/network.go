// Package network holds the static table of EVM network profiles a wallet can use.
package network

import (
	_ "embed"
	"fmt"
	"math/big"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed networks.yaml
var builtinTable []byte

// Profile describes one EVM network. Profiles are immutable once loaded.
type Profile struct {
	Key             string `yaml:"key" json:"key"`
	Name            string `yaml:"name" json:"name"`
	Symbol          string `yaml:"symbol" json:"symbol"`
	Decimals        int    `yaml:"decimals" json:"decimals"`
	ChainID         uint64 `yaml:"chainId" json:"chainId"`
	RPCURL          string `yaml:"rpcUrl" json:"rpcUrl"`
	ExplorerTx      string `yaml:"explorerTx" json:"explorerTx"`
	ExplorerAddress string `yaml:"explorerAddress" json:"explorerAddress"`
}

// ChainIDBig returns the chain id in the form transaction signers expect
func (p Profile) ChainIDBig() *big.Int {
	return new(big.Int).SetUint64(p.ChainID)
}

// TxURL expands the transaction explorer template for hash
func (p Profile) TxURL(hash string) string {
	return strings.ReplaceAll(p.ExplorerTx, "{tx}", hash)
}

// AddressURL expands the address explorer template for addr
func (p Profile) AddressURL(addr string) string {
	return strings.ReplaceAll(p.ExplorerAddress, "{address}", addr)
}

func (p Profile) validate() error {
	switch {
	case p.Key == "":
		return fmt.Errorf("%w: missing key", ErrInvalidProfile)
	case p.RPCURL == "":
		return fmt.Errorf("%w: %s: missing rpcUrl", ErrInvalidProfile, p.Key)
	case p.ChainID == 0:
		return fmt.Errorf("%w: %s: missing chainId", ErrInvalidProfile, p.Key)
	case p.Decimals <= 0:
		return fmt.Errorf("%w: %s: decimals must be positive", ErrInvalidProfile, p.Key)
	}
	return nil
}

type tableFile struct {
	Default  string    `yaml:"default"`
	Networks []Profile `yaml:"networks"`
}

// Selector maps symbolic network keys to profiles
type Selector struct {
	profiles   []Profile
	byKey      map[string]int
	defaultKey string
}

// Builtin returns the selector over the embedded default table
func Builtin() *Selector {
	s, err := Parse(builtinTable)
	if err != nil {
		panic(fmt.Sprintf("builtin network table: %v", err))
	}
	return s
}

// LoadFile reads a network table from a YAML file
func LoadFile(path string) (*Selector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read network table: %w", err)
	}
	return Parse(data)
}

// Parse builds a selector from a YAML network table.
// Without an explicit default the first network is the default.
func Parse(data []byte) (*Selector, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse network table: %w", err)
	}
	if len(f.Networks) == 0 {
		return nil, ErrEmptyTable
	}

	s := &Selector{
		profiles: make([]Profile, 0, len(f.Networks)),
		byKey:    make(map[string]int, len(f.Networks)),
	}
	for _, p := range f.Networks {
		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, ok := s.byKey[p.Key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, p.Key)
		}
		s.byKey[p.Key] = len(s.profiles)
		s.profiles = append(s.profiles, p)
	}

	s.defaultKey = f.Default
	if s.defaultKey == "" {
		s.defaultKey = s.profiles[0].Key
	}
	if _, ok := s.byKey[s.defaultKey]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDefault, s.defaultKey)
	}
	return s, nil
}

// Resolve returns the profile for key. Unknown keys fall back to the default profile:
// callers only ever offer keys from Profiles, so a miss is not worth failing over.
func (s *Selector) Resolve(key string) Profile {
	if p, ok := s.Lookup(key); ok {
		return p
	}
	return s.Default()
}

// Lookup is the strict form of Resolve
func (s *Selector) Lookup(key string) (Profile, bool) {
	i, ok := s.byKey[key]
	if !ok {
		return Profile{}, false
	}
	return s.profiles[i], true
}

// Default returns the default profile
func (s *Selector) Default() Profile {
	return s.profiles[s.byKey[s.defaultKey]]
}

// Profiles returns all profiles in table order
func (s *Selector) Profiles() []Profile {
	out := make([]Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}
