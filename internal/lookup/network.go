package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// BINInfo fetches issuer metadata for the first six digits of a BIN.
func (c *Client) BINInfo(ctx context.Context, bin string) (string, error) {
	if len(bin) > 6 {
		bin = bin[:6]
	}

	var data struct {
		Scheme string `json:"scheme"`
		Type   string `json:"type"`
		Bank   struct {
			Name string `json:"name"`
		} `json:"bank"`
		Country struct {
			Name string `json:"name"`
		} `json:"country"`
	}

	if err := c.getJSON(ctx, fmt.Sprintf("%s/%s", c.binBase, url.PathEscape(bin)), &data); err != nil {
		return "", err
	}

	return fmt.Sprintf("🔹 *Issuer:* %s\n🔹 *Country:* %s\n🔹 *Type:* %s\n🔹 *Scheme:* %s",
		orNA(data.Bank.Name),
		orNA(data.Country.Name),
		capitalize(orNA(data.Type)),
		capitalize(orNA(data.Scheme)),
	), nil
}

// IPInfo geolocates an IP address.
func (c *Client) IPInfo(ctx context.Context, ip string) (string, error) {
	var data struct {
		Status     string  `json:"status"`
		Country    string  `json:"country"`
		RegionName string  `json:"regionName"`
		City       string  `json:"city"`
		Zip        string  `json:"zip"`
		Lat        float64 `json:"lat"`
		Lon        float64 `json:"lon"`
		ISP        string  `json:"isp"`
		Org        string  `json:"org"`
	}

	if err := c.getJSON(ctx, fmt.Sprintf("%s/json/%s", c.ipBase, url.PathEscape(ip)), &data); err != nil {
		return "", err
	}

	if data.Status != "success" {
		return "", fmt.Errorf("ip lookup failed for %q", ip)
	}

	return fmt.Sprintf("🔍 *IP Information for* `%s`\n\n"+
		"Country: `%s`\n"+
		"Region: `%s`\n"+
		"City: `%s`\n"+
		"ZIP Code: `%s`\n"+
		"Coordinates: `%g, %g`\n"+
		"ISP: `%s`\n"+
		"Organization: `%s`",
		ip,
		orNA(data.Country),
		orNA(data.RegionName),
		orNA(data.City),
		orNA(data.Zip),
		data.Lat, data.Lon,
		orNA(data.ISP),
		orNA(data.Org),
	), nil
}

// Whois fetches domain registration data over RDAP.
func (c *Client) Whois(ctx context.Context, domain string) (string, error) {
	var data struct {
		Events []struct {
			Action string `json:"eventAction"`
			Date   string `json:"eventDate"`
		} `json:"events"`
		Nameservers []struct {
			LDHName string `json:"ldhName"`
		} `json:"nameservers"`
		Entities []struct {
			Roles      []string          `json:"roles"`
			VcardArray []json.RawMessage `json:"vcardArray"`
		} `json:"entities"`
	}

	if err := c.getJSON(ctx, fmt.Sprintf("%s/domain/%s", c.rdapBase, url.PathEscape(domain)), &data); err != nil {
		return "", err
	}

	registered, expires := "N/A", "N/A"
	for _, event := range data.Events {
		switch event.Action {
		case "registration":
			registered = event.Date
		case "expiration":
			expires = event.Date
		}
	}

	registrar := "N/A"
	for _, entity := range data.Entities {
		if !containsRole(entity.Roles, "registrar") || len(entity.VcardArray) < 2 {
			continue
		}
		if name := vcardFullName(entity.VcardArray[1]); name != "" {
			registrar = name
		}
		break
	}

	servers := make([]string, 0, len(data.Nameservers))
	for _, ns := range data.Nameservers {
		if ns.LDHName != "" {
			servers = append(servers, "- "+strings.ToLower(ns.LDHName))
		}
	}
	if len(servers) == 0 {
		servers = append(servers, "- N/A")
	}

	return fmt.Sprintf("🌐 *Whois for* `%s`\n\n"+
		"Registrar: `%s`\n"+
		"Creation Date: `%s`\n"+
		"Expiration Date: `%s`\n"+
		"Name Servers:\n%s",
		domain, registrar, registered, expires, strings.Join(servers, "\n"),
	), nil
}

// GitHubUser fetches a GitHub profile, returning the formatted summary and the
// avatar URL for the photo caption.
func (c *Client) GitHubUser(ctx context.Context, username string) (summary, avatarURL string, err error) {
	var data struct {
		Message     string `json:"message"`
		Login       string `json:"login"`
		Name        string `json:"name"`
		Bio         string `json:"bio"`
		Followers   int    `json:"followers"`
		Following   int    `json:"following"`
		PublicRepos int    `json:"public_repos"`
		HTMLURL     string `json:"html_url"`
		AvatarURL   string `json:"avatar_url"`
	}

	if err := c.getJSON(ctx, fmt.Sprintf("%s/users/%s", c.githubBase, url.PathEscape(username)), &data); err != nil {
		return "", "", err
	}

	if data.Login == "" {
		return "", "", fmt.Errorf("github user %q not found", username)
	}

	summary = fmt.Sprintf("👨‍💻 *GitHub User: %s*\n\n"+
		"*Name:* %s\n"+
		"*Bio:* %s\n"+
		"*Followers:* %d\n"+
		"*Following:* %d\n"+
		"*Public Repos:* %d\n"+
		"*Profile Link:* %s",
		data.Login,
		orNA(data.Name),
		orNA(data.Bio),
		data.Followers,
		data.Following,
		data.PublicRepos,
		data.HTMLURL,
	)

	return summary, data.AvatarURL, nil
}

// Weather fetches current conditions for a city via OpenWeatherMap.
func (c *Client) Weather(ctx context.Context, city string) (string, error) {
	if !c.WeatherConfigured() {
		return "", ErrWeatherNotConfigured
	}

	var data struct {
		Cod  int    `json:"cod"`
		Name string `json:"name"`
		Sys  struct {
			Country string `json:"country"`
		} `json:"sys"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
	}

	endpoint := fmt.Sprintf("%s/data/2.5/weather?q=%s&appid=%s&units=metric",
		c.weatherBase, url.QueryEscape(city), url.QueryEscape(c.weatherKey))

	if err := c.getJSON(ctx, endpoint, &data); err != nil {
		return "", err
	}

	if data.Cod != 200 {
		return "", fmt.Errorf("weather lookup failed for %q", city)
	}

	condition := "N/A"
	if len(data.Weather) > 0 {
		condition = capitalize(data.Weather[0].Description)
	}

	return fmt.Sprintf("*Weather in %s, %s*\n"+
		"Condition: *%s*\n"+
		"Temp: *%.1f°C* | Humidity: *%d%%*",
		data.Name, data.Sys.Country, condition, data.Main.Temp, data.Main.Humidity,
	), nil
}

func containsRole(roles []string, want string) bool {
	for _, role := range roles {
		if role == want {
			return true
		}
	}
	return false
}

// vcardFullName extracts the "fn" property from a jCard property list.
func vcardFullName(properties json.RawMessage) string {
	var props [][]json.RawMessage
	if err := json.Unmarshal(properties, &props); err != nil {
		return ""
	}

	for _, prop := range props {
		if len(prop) < 4 {
			continue
		}

		var name string
		if err := json.Unmarshal(prop[0], &name); err != nil || name != "fn" {
			continue
		}

		var value string
		if err := json.Unmarshal(prop[3], &value); err == nil {
			return value
		}
	}

	return ""
}
