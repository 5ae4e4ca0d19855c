// Package catalog turns a resampled spectral curve into a catalog record.
//
// A record is a copy of a template document (an ACES style spectral data
// JSON file) with four header fields replaced:
//
//   - model
//   - catalog_number: <device>_<manufacturer>_<model slug>_<version>
//   - unique_identifier: a random UUID
//   - document_creation_date: build time, "2006-01-02 15:04:05.000000"
//
// and with spectral_data.data.main["<nm>"] set to [r, g, b] for every grid
// wavelength. All other template content is passed through.
package catalog
