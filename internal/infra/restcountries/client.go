// Package restcountries fetches country records from the public
// REST Countries v3.1 API for bulk import.
package restcountries

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"explorer/config"
	"explorer/internal/domain/entity"
	"explorer/internal/domain/service"
	"explorer/internal/errors"

	"github.com/tidwall/gjson"
)

const allFields = "name,capital,region,population,languages,currencies,borders,timezones,flags"

// Client implements service.CountrySource against the REST Countries API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client from the countriesApi config section.
func New(cfg *config.Config) service.CountrySource {
	apiCfg := cfg.CountriesAPI

	return &Client{
		baseURL: apiCfg.BaseURL,
		httpClient: &http.Client{
			Timeout: apiCfg.Timeout,
		},
	}
}

// FetchAll retrieves every country the API knows about.
func (c *Client) FetchAll(ctx context.Context) ([]*entity.Country, error) {
	endpoint := fmt.Sprintf("%s/all?fields=%s", c.baseURL, url.QueryEscape(allFields))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build countries request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch countries")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("countries API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read countries response")
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return nil, errors.New("countries API returned unexpected payload shape")
	}

	items := parsed.Array()
	countries := make([]*entity.Country, 0, len(items))
	for _, item := range items {
		country := parseCountry(item)
		if country.Name == "" {
			continue
		}
		countries = append(countries, country)
	}

	return countries, nil
}

// parseCountry picks the fields this service stores out of one element of
// the v3.1 payload. Languages arrive as a code->name map, currencies as a
// code->detail map; only the display names and codes are kept.
func parseCountry(item gjson.Result) *entity.Country {
	country := &entity.Country{
		Name:       item.Get("name.common").String(),
		Capital:    item.Get("capital.0").String(),
		Region:     item.Get("region").String(),
		Population: item.Get("population").Int(),
		FlagURL:    item.Get("flags.png").String(),
	}

	item.Get("languages").ForEach(func(_, value gjson.Result) bool {
		country.Languages = append(country.Languages, value.String())

		return true
	})

	item.Get("currencies").ForEach(func(key, value gjson.Result) bool {
		name := value.Get("name").String()
		if name == "" {
			name = key.String()
		}
		country.Currencies = append(country.Currencies, name)

		return true
	})

	for _, border := range item.Get("borders").Array() {
		country.Borders = append(country.Borders, border.String())
	}

	for _, timezone := range item.Get("timezones").Array() {
		country.Timezones = append(country.Timezones, timezone.String())
	}

	return country
}
