package item

import "time"

// ==================== Remote Source Defaults ====================

const (
	DefaultRepoOwner  = "Android65"
	DefaultRepoName   = "arcraiders-data"
	DefaultItemsPath  = "items"
	DefaultBranch     = "main"
	DefaultAPIBaseURL = "https://api.github.com"
	DefaultRawBaseURL = "https://raw.githubusercontent.com"

	// DefaultBatchSize caps concurrent item file downloads
	DefaultBatchSize = 15

	DefaultFetchTimeout = 30 * time.Second
)

// Response body caps; an item record is a few KiB and a listing a few hundred entries
const (
	MaxItemFileBytes = 1 << 20
	MaxListingBytes  = 8 << 20
)

// ItemFileExt is the suffix of item record files in a catalog directory or repository listing
const ItemFileExt = ".json"

// GitHub API request headers
const (
	HeaderAccept        = "Accept"
	HeaderUserAgent     = "User-Agent"
	HeaderAuthorization = "Authorization"
	GitHubAcceptJSON    = "application/vnd.github+json"
	UserAgent           = "arc-planner"
)

// ==================== Error Messages ====================

const (
	ErrMsgReadCatalogFailed  = "failed to read catalog %s: %w"
	ErrMsgReadDirFailed      = "failed to read catalog directory %s: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog %s: %w"
	ErrMsgBuildRequestFailed = "failed to build request: %w"
	ErrMsgListFailed         = "failed to list item files: %w"
	ErrMsgListStatusFmt      = "%w: listing %s returned %d"
	ErrMsgDecodeListFailed   = "failed to decode item listing: %w"
	ErrMsgFileStatusFmt      = "%s returned %d"
	ErrMsgFileTooLargeFmt    = "%s exceeds %d bytes"
)

// Validation error formats, used with domain.ErrInvalidItem
const (
	ErrFmtEmptyID          = "%w: record has empty id"
	ErrFmtNegativeWeight   = "%w: item '%s' has negative weightKg"
	ErrFmtNegativeValue    = "%w: item '%s' has negative value"
	ErrFmtNonPositiveCount = "%w: item '%s' %s entry '%s' has count %d"
	ErrFmtEmptyComponentID = "%w: item '%s' %s has an empty component id"
)

// ==================== Log Messages ====================

const (
	LogMsgRecordSkipped   = "Skipping invalid item record"
	LogMsgCatalogLoaded   = "Catalog loaded"
	LogMsgFileFetchFailed = "Failed to fetch item file"
	LogMsgRemoteListed    = "Listed remote item files"
	LogMsgUsingFallback   = "Primary catalog source failed, using fallback data"
	LogMsgPrimaryEmpty    = "Primary catalog source returned no items, using fallback data"
)
