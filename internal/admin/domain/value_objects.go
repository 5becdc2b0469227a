package domain

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// MaxStoreImageCount は管理画面から登録できる店舗画像の上限。
const MaxStoreImageCount = 10

// MaxDescriptionRunes limits store descriptions to keep payloads sane.
const MaxDescriptionRunes = 2000

type StoreName string

func NewStoreName(value string) (StoreName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("store name is required")
	}
	return StoreName(trimmed), nil
}

func (n StoreName) String() string {
	return string(n)
}

type City string

func NewCity(value string) (City, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("city is required")
	}
	return City(trimmed), nil
}

func (c City) String() string {
	return string(c)
}

type Genre string

func NewGenre(value string) (Genre, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("genre is required")
	}
	return Genre(trimmed), nil
}

func (g Genre) String() string {
	return string(g)
}

// URL validates optional absolute http(s) URLs. Empty input stays empty.
type URL string

func NewURL(value string) (URL, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("url must be absolute http(s): %s", trimmed)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("url must have a host: %s", trimmed)
	}
	return URL(trimmed), nil
}

func (u URL) String() string {
	return string(u)
}

// RequiredURL rejects empty input on top of NewURL.
func RequiredURL(value string) (URL, error) {
	parsed, err := NewURL(value)
	if err != nil {
		return "", err
	}
	if parsed == "" {
		return "", fmt.Errorf("url is required")
	}
	return parsed, nil
}

type ImageURLList []URL

func NewImageURLList(values []string) (ImageURLList, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) > MaxStoreImageCount {
		return nil, fmt.Errorf("store images are limited to %d", MaxStoreImageCount)
	}
	result := make([]URL, 0, len(values))
	seen := make(map[URL]struct{})
	for _, raw := range values {
		value, err := RequiredURL(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return ImageURLList(result), nil
}

func (l ImageURLList) Strings() []string {
	result := make([]string, 0, len(l))
	for _, v := range l {
		result = append(result, string(v))
	}
	return result
}

type Description string

func NewDescription(value string) (Description, error) {
	trimmed := strings.TrimSpace(value)
	if utf8.RuneCountInString(trimmed) > MaxDescriptionRunes {
		return "", fmt.Errorf("description must be at most %d characters", MaxDescriptionRunes)
	}
	return Description(trimmed), nil
}

func (d Description) String() string {
	return string(d)
}

// Coordinates holds an optional latitude/longitude pair.
// 片方だけの指定は地図埋め込みを壊すため許可しない。
type Coordinates struct {
	Latitude  *float64
	Longitude *float64
}

func NewCoordinates(latitude, longitude *float64) (Coordinates, error) {
	if (latitude == nil) != (longitude == nil) {
		return Coordinates{}, fmt.Errorf("latitude and longitude must be provided together")
	}
	if latitude == nil {
		return Coordinates{}, nil
	}
	if *latitude < -90 || *latitude > 90 {
		return Coordinates{}, fmt.Errorf("latitude out of range: %g", *latitude)
	}
	if *longitude < -180 || *longitude > 180 {
		return Coordinates{}, fmt.Errorf("longitude out of range: %g", *longitude)
	}
	return Coordinates{Latitude: latitude, Longitude: longitude}, nil
}
