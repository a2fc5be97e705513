package engine

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tatianab/treasure-hunter/internal/models"
)

//go:embed data/catalog.yaml
var catalogYAML []byte

// CatalogVariant selects which goods a shop stocks.
type CatalogVariant string

const (
	CatalogStandard CatalogVariant = "standard"
	CatalogSamurai  CatalogVariant = "samurai"
)

// ShopMode is the direction of a shop visit.
type ShopMode string

const (
	ShopBuy  ShopMode = "buy"
	ShopSell ShopMode = "sell"
)

var ErrNotStocked = errors.New("item not stocked")

type catalogEntry struct {
	Item  models.Tool `yaml:"item"`
	Price int         `yaml:"price"`
}

func loadCatalog(variant CatalogVariant) (map[models.Tool]int, error) {
	var catalogs map[CatalogVariant][]catalogEntry
	if err := yaml.Unmarshal(catalogYAML, &catalogs); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	entries := catalogs[CatalogStandard]
	if variant == CatalogSamurai {
		entries = append(entries, catalogs[CatalogSamurai]...)
	} else if variant != CatalogStandard {
		return nil, fmt.Errorf("unknown catalog %q", variant)
	}

	prices := make(map[models.Tool]int, len(entries))
	for _, e := range entries {
		prices[e.Item] = e.Price
	}
	return prices, nil
}

// ShopResult is what a visit to the shop produced. Transacted is true when
// gold and goods changed hands.
type ShopResult struct {
	Message    string
	Transacted bool
}

// Shop sells and buys back tools. One Shop serves every town in a session.
type Shop struct {
	markdown float64
	prices   map[models.Tool]int
}

// NewShop returns a shop stocking the given catalog that refunds markdown
// of the base price on sales.
func NewShop(markdown float64, variant CatalogVariant) (*Shop, error) {
	if markdown <= 0 || markdown > 1 {
		return nil, fmt.Errorf("markdown must be in (0, 1], got %v", markdown)
	}
	prices, err := loadCatalog(variant)
	if err != nil {
		return nil, err
	}
	return &Shop{markdown: markdown, prices: prices}, nil
}

func (s *Shop) Markdown() float64 { return s.markdown }

// BuyPrice returns what the shop charges for tool.
func (s *Shop) BuyPrice(tool models.Tool) (int, bool) {
	price, ok := s.prices[tool]
	return price, ok
}

// SellPrice returns what the shop pays for tool: the base price times the
// markdown, rounded down.
func (s *Shop) SellPrice(tool models.Tool) (int, bool) {
	price, ok := s.prices[tool]
	if !ok {
		return 0, false
	}
	return int(math.Floor(float64(price) * s.markdown)), true
}

// Buy sells one tool to h.
func (s *Shop) Buy(h *models.Hunter, tool models.Tool) (string, error) {
	price, ok := s.BuyPrice(tool)
	if !ok {
		return fmt.Sprintf("We don't sell any %q here.", string(tool)), fmt.Errorf("%w: %s", ErrNotStocked, tool)
	}
	if err := h.BuyItem(tool, price); err != nil {
		return fmt.Sprintf("Hmm, a %s costs %d gold and you've only got %d. Come back when you can pay.", tool, price, h.Gold()), err
	}
	return fmt.Sprintf("Ye' got yerself a %s for %d gold. Come again soon.", tool, price), nil
}

// Sell buys one tool back from h.
func (s *Shop) Sell(h *models.Hunter, tool models.Tool) (string, error) {
	price, ok := s.SellPrice(tool)
	if !ok {
		return fmt.Sprintf("We don't deal in %q here.", string(tool)), fmt.Errorf("%w: %s", ErrNotStocked, tool)
	}
	if err := h.SellItem(tool, price); err != nil {
		return fmt.Sprintf("Stop stringin' me along! You don't have a %s to sell.", tool), err
	}
	return fmt.Sprintf("Pleasure doin' business with you. You sold your %s for %d gold.", tool, price), nil
}

// Enter runs one visit. With no tool named it lists prices for the mode.
func (s *Shop) Enter(h *models.Hunter, mode ShopMode, tool models.Tool) ShopResult {
	if tool == "" {
		return ShopResult{Message: s.Listing(mode)}
	}

	var (
		msg string
		err error
	)
	switch mode {
	case ShopBuy:
		msg, err = s.Buy(h, tool)
	case ShopSell:
		msg, err = s.Sell(h, tool)
	default:
		return ShopResult{Message: fmt.Sprintf("The shopkeeper doesn't know how to %q.", string(mode))}
	}
	return ShopResult{Message: msg, Transacted: err == nil}
}

// Listing renders the price list for mode, cheapest first.
func (s *Shop) Listing(mode ShopMode) string {
	tools := make([]models.Tool, 0, len(s.prices))
	for tool := range s.prices {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		if s.prices[tools[i]] != s.prices[tools[j]] {
			return s.prices[tools[i]] < s.prices[tools[j]]
		}
		return tools[i] < tools[j]
	})

	var b strings.Builder
	if mode == ShopSell {
		b.WriteString("What're you lookin' to sell? We pay:")
	} else {
		b.WriteString("Welcome to the shop! We have the finest wares in town:")
	}
	for _, tool := range tools {
		price := s.prices[tool]
		if mode == ShopSell {
			price, _ = s.SellPrice(tool)
		}
		fmt.Fprintf(&b, "\n  %s: %d gold", string(tool), price)
	}
	fmt.Fprintf(&b, "\nType '%s <item>' to %s.", mode, mode)
	return b.String()
}
