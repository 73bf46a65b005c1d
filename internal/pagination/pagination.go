// Package pagination normalizes page requests arriving at the HTTP boundary.
// The services themselves never clamp; they reject non-positive values.
package pagination

import (
	"fmt"
	"net/url"
	"strconv"
)

// Config holds page size limits.
type Config struct {
	DefaultPageSize int `mapstructure:"DEFAULT_PAGE_SIZE"`
	MaxPageSize     int `mapstructure:"MAX_PAGE_SIZE"`
}

// Validate rejects limits that would make Normalize produce an unusable request.
func (c Config) Validate() error {
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("default page size must be positive")
	}
	if c.MaxPageSize < 1 {
		return fmt.Errorf("max page size must be positive")
	}
	if c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("default page size cannot exceed max page size")
	}
	return nil
}

// Request is a one-based page number and a page size.
type Request struct {
	Page     int
	PageSize int
}

// Normalize adjusts the request to valid values based on the config.
func (r *Request) Normalize(cfg Config) {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	if r.PageSize > cfg.MaxPageSize {
		r.PageSize = cfg.MaxPageSize
	}
}

// FromQuery parses page and page_size from URL query values and normalizes them.
// Unparseable values fall back to the defaults.
func FromQuery(values url.Values, cfg Config) Request {
	page, _ := strconv.Atoi(values.Get("page"))
	pageSize, _ := strconv.Atoi(values.Get("page_size"))

	req := Request{Page: page, PageSize: pageSize}
	req.Normalize(cfg)
	return req
}
