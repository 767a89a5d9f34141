package item

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
	"github.com/osse101/ArcPlanner_Go/internal/logger"
	"github.com/osse101/ArcPlanner_Go/internal/metrics"
)

// ErrRemoteStatus is returned when the repository listing answers with a non-200 status
var ErrRemoteStatus = errors.New("unexpected remote status")

// RemoteConfig locates the item files of a GitHub repository
type RemoteConfig struct {
	Owner      string
	Repo       string
	Path       string
	Branch     string
	APIBaseURL string
	RawBaseURL string
	Token      string
	BatchSize  int
}

// DefaultRemoteConfig points at the public item dataset
func DefaultRemoteConfig() RemoteConfig {
	return RemoteConfig{
		Owner:      DefaultRepoOwner,
		Repo:       DefaultRepoName,
		Path:       DefaultItemsPath,
		Branch:     DefaultBranch,
		APIBaseURL: DefaultAPIBaseURL,
		RawBaseURL: DefaultRawBaseURL,
		BatchSize:  DefaultBatchSize,
	}
}

// RemoteSource lists a repository directory through the contents API and
// downloads every item file from the raw content host
type RemoteSource struct {
	cfg    RemoteConfig
	client *http.Client
	loader Loader
}

type contentEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// NewRemoteSource creates a remote source. A nil client uses one with DefaultFetchTimeout.
func NewRemoteSource(cfg RemoteConfig, client *http.Client, loader Loader) *RemoteSource {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	if loader == nil {
		loader = NewLoader()
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.Branch == "" {
		cfg.Branch = DefaultBranch
	}
	return &RemoteSource{cfg: cfg, client: client, loader: loader}
}

// Fetch downloads the catalog. Individual file failures are logged and dropped;
// only a failed listing is an error.
func (s *RemoteSource) Fetch(ctx context.Context) ([]domain.Item, error) {
	log := logger.FromContext(ctx)

	names, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	log.Info(LogMsgRemoteListed, "files", len(names), "repo", s.cfg.Owner+"/"+s.cfg.Repo)

	results := make([][]domain.Item, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchSize)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			items, err := s.fetchFile(gctx, name)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				metrics.CatalogFetchedFiles.WithLabelValues(metrics.ResultFailure).Inc()
				log.Warn(LogMsgFileFetchFailed, "file", name, "error", err)
				return nil
			}
			metrics.CatalogFetchedFiles.WithLabelValues(metrics.ResultSuccess).Inc()
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := []domain.Item{}
	for _, r := range results {
		items = append(items, r...)
	}
	log.Info(LogMsgCatalogLoaded, logger.AttrKeySource, "remote", "items", len(items))
	return items, nil
}

func (s *RemoteSource) list(ctx context.Context) ([]string, error) {
	listURL := fmt.Sprintf("%s/repos/%s/%s/contents/%s",
		strings.TrimRight(s.cfg.APIBaseURL, "/"), url.PathEscape(s.cfg.Owner), url.PathEscape(s.cfg.Repo), s.cfg.Path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildRequestFailed, err)
	}
	req.Header.Set(HeaderAccept, GitHubAcceptJSON)
	req.Header.Set(HeaderUserAgent, UserAgent)
	if s.cfg.Token != "" {
		req.Header.Set(HeaderAuthorization, "Bearer "+s.cfg.Token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf(ErrMsgListStatusFmt, ErrRemoteStatus, listURL, resp.StatusCode)
	}

	var entries []contentEntry
	if err := json.NewDecoder(io.LimitReader(resp.Body, MaxListingBytes)).Decode(&entries); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeListFailed, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type != "" && e.Type != "file" {
			continue
		}
		if strings.HasSuffix(e.Name, ItemFileExt) {
			names = append(names, e.Name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no item files under %s", domain.ErrCatalogEmpty, s.cfg.Path)
	}
	return names, nil
}

func (s *RemoteSource) fetchFile(ctx context.Context, name string) ([]domain.Item, error) {
	rawURL := fmt.Sprintf("%s/%s/%s/%s/%s/%s",
		strings.TrimRight(s.cfg.RawBaseURL, "/"), s.cfg.Owner, s.cfg.Repo, s.cfg.Branch, s.cfg.Path, url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildRequestFailed, err)
	}
	req.Header.Set(HeaderUserAgent, UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf(ErrMsgFileStatusFmt, rawURL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxItemFileBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxItemFileBytes {
		return nil, fmt.Errorf(ErrMsgFileTooLargeFmt, rawURL, MaxItemFileBytes)
	}
	return s.loader.Parse(ctx, data, name)
}
