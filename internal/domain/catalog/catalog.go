package catalog

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/errs"
)

var (
	ErrServiceNotFound = errs.New("service not found")
	ErrServerNotFound  = errs.New("server not found")
)

// Server is one vendor-side source for a service: which vendor service code
// and country to rent from, and the sticker price.
type Server struct {
	Name          string `json:"name"`
	VendorService string `json:"vendor_service"`
	VendorCountry string `json:"vendor_country"`
	PricePaise    int64  `json:"price_paise"`
}

func (s Server) Price() wallet.Money {
	return wallet.FromPaise(s.PricePaise)
}

type Service struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Servers []Server `json:"servers"`
}

// DiscountTier grants Percent off once the user's monthly deposits reach
// DepositPaise.
type DiscountTier struct {
	DepositPaise int64 `json:"deposit_paise"`
	Percent      int64 `json:"percent"`
}

type Catalog struct {
	Services        []Service      `json:"services"`
	DiscountEnabled bool           `json:"discount_enabled"`
	DiscountTiers   []DiscountTier `json:"discount_tiers"`

	byID map[string]*Service
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read catalog file")
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errs.Wrap(err, "failed to parse catalog")
	}
	c.byID = make(map[string]*Service, len(c.Services))
	for i := range c.Services {
		c.byID[c.Services[i].ID] = &c.Services[i]
	}
	// Highest tier first so the first match wins during quoting.
	sort.Slice(c.DiscountTiers, func(i, j int) bool {
		return c.DiscountTiers[i].DepositPaise > c.DiscountTiers[j].DepositPaise
	})
	return &c, nil
}

func (c *Catalog) Service(id string) (*Service, error) {
	svc, ok := c.byID[id]
	if !ok {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

func (c *Catalog) Resolve(serviceID string, serverIndex int) (*Service, *Server, error) {
	svc, err := c.Service(serviceID)
	if err != nil {
		return nil, nil, err
	}
	if serverIndex < 0 || serverIndex >= len(svc.Servers) {
		return nil, nil, ErrServerNotFound
	}
	return svc, &svc.Servers[serverIndex], nil
}
