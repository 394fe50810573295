// Package geo fills in missing country fields from conversation IPs.
//
// The chatbot logs a country with each conversation, but older rows predate
// that column and carry an empty value. When a local GeoLite2 country
// database is present those rows are resolved from the IP instead; without
// the database the report simply shows the country as unknown.
package geo

import (
	"errors"
	"fmt"
	"io/fs"
	"net"

	"github.com/oschwald/geoip2-golang"

	"convreport/internal/model"
)

// DefaultDBPath is where the optional GeoLite2 database is looked up.
const DefaultDBPath = "data/GeoLite2-Country.mmdb"

// Resolver looks up countries in a local GeoLite2 database.
// A nil Resolver is valid and resolves nothing.
type Resolver struct {
	reader *geoip2.Reader
}

// Open returns a Resolver backed by the database at path.
// A missing file is not an error; it yields a nil Resolver.
func Open(path string) (*Resolver, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open geoip database: %w", err)
	}
	return &Resolver{reader: reader}, nil
}

// Close releases the underlying database.
func (r *Resolver) Close() {
	if r != nil && r.reader != nil {
		_ = r.reader.Close()
	}
}

// Country returns the English country name for an IP address, or "" when
// the address is invalid or not in the database.
func (r *Resolver) Country(ipAddress string) string {
	if r == nil {
		return ""
	}
	ip := net.ParseIP(ipAddress)
	if ip == nil {
		return ""
	}
	record, err := r.reader.Country(ip)
	if err != nil {
		return ""
	}
	return record.Country.Names["en"]
}

// Enrich resolves the country, in place, for every conversation that has an
// IP but no country. Countries already present in the log are trusted.
func Enrich(convs []model.Conversation, r *Resolver) {
	if r == nil {
		return
	}
	for i := range convs {
		if convs[i].Country == "" && convs[i].IP != "" {
			convs[i].Country = r.Country(convs[i].IP)
		}
	}
}
