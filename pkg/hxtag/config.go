package hxtag

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/htmxkit/pkg/antiforgery"
	"github.com/dmitrymomot/htmxkit/pkg/htmx"
)

// BinaryType is the type of binary data received over htmx WebSockets.
type BinaryType string

const (
	BinaryTypeBlob        BinaryType = "blob"
	BinaryTypeArrayBuffer BinaryType = "arraybuffer"
)

// ScrollBehavior controls scrolling after boosted navigation.
type ScrollBehavior string

const (
	ScrollAuto   ScrollBehavior = "auto"
	ScrollSmooth ScrollBehavior = "smooth"
)

// TokenIssuer issues the anti-forgery token set embedded into the config.
// *antiforgery.Manager implements it.
type TokenIssuer interface {
	GetAndStoreTokens(w http.ResponseWriter, r *http.Request) (antiforgery.TokenSet, error)
}

// Config mirrors htmx.config. Nil fields are left out so htmx keeps its defaults.
type Config struct {
	HistoryEnabled          *bool           `json:"historyEnabled,omitempty" yaml:"historyEnabled,omitempty"`
	HistoryCacheSize        *int            `json:"historyCacheSize,omitempty" yaml:"historyCacheSize,omitempty"`
	RefreshOnHistoryMiss    *bool           `json:"refreshOnHistoryMiss,omitempty" yaml:"refreshOnHistoryMiss,omitempty"`
	DefaultSwapStyle        *htmx.Swap      `json:"defaultSwapStyle,omitempty" yaml:"defaultSwapStyle,omitempty"`
	DefaultSwapDelay        *int            `json:"defaultSwapDelay,omitempty" yaml:"defaultSwapDelay,omitempty"`
	DefaultSettleDelay      *int            `json:"defaultSettleDelay,omitempty" yaml:"defaultSettleDelay,omitempty"`
	IncludeIndicatorStyles  *bool           `json:"includeIndicatorStyles,omitempty" yaml:"includeIndicatorStyles,omitempty"`
	IndicatorClass          *string         `json:"indicatorClass,omitempty" yaml:"indicatorClass,omitempty"`
	RequestClass            *string         `json:"requestClass,omitempty" yaml:"requestClass,omitempty"`
	AddedClass              *string         `json:"addedClass,omitempty" yaml:"addedClass,omitempty"`
	SettlingClass           *string         `json:"settlingClass,omitempty" yaml:"settlingClass,omitempty"`
	SwappingClass           *string         `json:"swappingClass,omitempty" yaml:"swappingClass,omitempty"`
	AllowEval               *bool           `json:"allowEval,omitempty" yaml:"allowEval,omitempty"`
	AllowScriptTags         *bool           `json:"allowScriptTags,omitempty" yaml:"allowScriptTags,omitempty"`
	InlineScriptNonce       *string         `json:"inlineScriptNonce,omitempty" yaml:"inlineScriptNonce,omitempty"`
	AttributesToSettle      []string        `json:"attributesToSettle,omitempty" yaml:"attributesToSettle,omitempty"`
	UseTemplateFragments    *bool           `json:"useTemplateFragments,omitempty" yaml:"useTemplateFragments,omitempty"`
	WSReconnectDelay        *string         `json:"wsReconnectDelay,omitempty" yaml:"wsReconnectDelay,omitempty"`
	WSBinaryType            *BinaryType     `json:"wsBinaryType,omitempty" yaml:"wsBinaryType,omitempty"`
	DisableSelector         *string         `json:"disableSelector,omitempty" yaml:"disableSelector,omitempty"`
	WithCredentials         *bool           `json:"withCredentials,omitempty" yaml:"withCredentials,omitempty"`
	Timeout                 *int            `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	ScrollBehavior          *ScrollBehavior `json:"scrollBehavior,omitempty" yaml:"scrollBehavior,omitempty"`
	DefaultFocusScroll      *bool           `json:"defaultFocusScroll,omitempty" yaml:"defaultFocusScroll,omitempty"`
	GetCacheBusterParam     *bool           `json:"getCacheBusterParam,omitempty" yaml:"getCacheBusterParam,omitempty"`
	GlobalViewTransitions   *bool           `json:"globalViewTransitions,omitempty" yaml:"globalViewTransitions,omitempty"`
	MethodsThatUseURLParams []string        `json:"methodsThatUseUrlParams,omitempty" yaml:"methodsThatUseUrlParams,omitempty"`
	SelfRequestsOnly        *bool           `json:"selfRequestsOnly,omitempty" yaml:"selfRequestsOnly,omitempty"`
	IgnoreTitle             *bool           `json:"ignoreTitle,omitempty" yaml:"ignoreTitle,omitempty"`
	ScrollIntoViewOnBoost   *bool           `json:"scrollIntoViewOnBoost,omitempty" yaml:"scrollIntoViewOnBoost,omitempty"`
	TriggerSpecsCache       *string         `json:"triggerSpecsCache,omitempty" yaml:"triggerSpecsCache,omitempty"`

	// IncludeAntiforgeryToken embeds a freshly issued token set as "antiForgery".
	IncludeAntiforgeryToken bool `json:"-" yaml:"includeAntiforgeryToken,omitempty"`
}

type tokenData struct {
	HeaderName    string `json:"headerName,omitempty"`
	FormFieldName string `json:"formFieldName"`
	RequestToken  string `json:"requestToken,omitempty"`
}

type configJSON struct {
	*Config
	DefaultSwapStyle *string    `json:"defaultSwapStyle,omitempty"`
	AntiForgery      *tokenData `json:"antiForgery,omitempty"`
}

// JSON encodes the config. A nil config encodes as {}. When
// IncludeAntiforgeryToken is set, issuer must not be nil and a new token set
// is issued for the request.
func (c *Config) JSON(w http.ResponseWriter, r *http.Request, issuer TokenIssuer) ([]byte, error) {
	if c == nil {
		c = &Config{}
	}
	out := configJSON{Config: c}

	if c.DefaultSwapStyle != nil {
		s := c.DefaultSwapStyle.String()
		out.DefaultSwapStyle = &s
	}

	if c.IncludeAntiforgeryToken {
		if issuer == nil {
			return nil, ErrNoTokenIssuer
		}
		tokens, err := issuer.GetAndStoreTokens(w, r)
		if err != nil {
			return nil, fmt.Errorf("hxtag: issue antiforgery tokens: %w", err)
		}
		out.AntiForgery = &tokenData{
			HeaderName:    tokens.HeaderName,
			FormFieldName: tokens.FormFieldName,
			RequestToken:  tokens.RequestToken,
		}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("hxtag: encode config: %w", err)
	}
	return data, nil
}

// Meta renders <meta name="htmx-config" content="..."> for the config.
// Tokens are issued eagerly so cookies are set before the body is written.
func Meta(w http.ResponseWriter, r *http.Request, cfg *Config, issuer TokenIssuer) (templ.Component, error) {
	data, err := cfg.JSON(w, r, issuer)
	if err != nil {
		return nil, err
	}
	content := string(data)
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<meta name="htmx-config" content="`+templ.EscapeString(content)+`">`)
		return err
	}), nil
}

// LoadConfig reads a Config from YAML using the same camelCase keys as htmx.config.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		if err == io.EOF {
			return &cfg, nil
		}
		return nil, fmt.Errorf("hxtag: load config: %w", err)
	}
	if cfg.DefaultSwapStyle != nil {
		s, ok := htmx.ParseSwap(string(*cfg.DefaultSwapStyle))
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSwap, *cfg.DefaultSwapStyle)
		}
		cfg.DefaultSwapStyle = &s
	}
	return &cfg, nil
}
