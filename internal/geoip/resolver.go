package geoip

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// Resolver answers country lookups against a MaxMind .mmdb database. It is
// optional infrastructure: the console runs without one and simply leaves
// unenriched attack records as-is.
type Resolver struct {
	reader *geoip2.Reader
}

func Open(path string) (*Resolver, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open GeoIP database: %w", err)
	}

	return &Resolver{reader: reader}, nil
}

func (r *Resolver) Close() {
	if r.reader != nil {
		r.reader.Close()
	}
}

func (r *Resolver) Country(ipAddress string) (string, string, error) {
	ip := net.ParseIP(ipAddress)
	if ip == nil {
		return "", "", fmt.Errorf("invalid ip address: %s", ipAddress)
	}

	record, err := r.reader.Country(ip)
	if err != nil {
		return "", "", err
	}

	return record.Country.Names["en"], record.Country.IsoCode, nil
}
