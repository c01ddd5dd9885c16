// Package crawler fetches SKILL.md files from known skill repositories via
// the GitHub contents API and returns them as records for the skills cache.
package crawler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/katahira/mekiki/internal/models"
)

// Source is one repository to crawl for skills.
type Source struct {
	Repo string `yaml:"repo"` // owner/name
	Path string `yaml:"path"` // subdirectory holding skills, "" for repo root
	Name string `yaml:"name"` // label recorded on crawled skills
}

// DefaultSources are the repositories crawled when none are configured.
var DefaultSources = []Source{
	{Repo: "vercel-labs/agent-skills", Path: "", Name: "vercel-labs"},
	{Repo: "affaan-m/everything-claude-code", Path: "skills", Name: "everything-claude-code"},
	{Repo: "travisvn/awesome-claude-skills", Path: "skills", Name: "awesome-claude-skills"},
}

const (
	defaultAPIBase = "https://api.github.com"
	maxDepth       = 3
	fetchAttempts  = 3
	// Pause between file fetches; the contents API is rate limited and we
	// have no reason to hammer it.
	defaultPause = 300 * time.Millisecond
)

// Options configures a Crawler. Zero values select production defaults.
type Options struct {
	Token      string // GitHub token, optional but raises the rate limit
	APIBase    string
	HTTPClient *http.Client
	Pause      time.Duration
}

// Crawler walks skill repositories. It is strictly sequential; pacing between
// fetches is a politeness policy, not concurrency control.
type Crawler struct {
	token   string
	apiBase string
	client  *http.Client
	pause   time.Duration
}

// New creates a Crawler.
func New(opts Options) *Crawler {
	c := &Crawler{
		token:   opts.Token,
		apiBase: opts.APIBase,
		client:  opts.HTTPClient,
		pause:   opts.Pause,
	}
	if c.apiBase == "" {
		c.apiBase = defaultAPIBase
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: 10 * time.Second}
	}
	if c.pause == 0 {
		c.pause = defaultPause
	}
	return c
}

// contentItem is the slice of the GitHub contents API response we care about.
type contentItem struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
	HTMLURL     string `json:"html_url"`
}

// Crawl fetches every SKILL.md reachable from the given sources.
func (c *Crawler) Crawl(ctx context.Context, sources []Source) ([]models.SkillRecord, error) {
	var all []models.SkillRecord

	for _, src := range sources {
		slog.Info("crawling skill source", "repo", src.Repo, "path", src.Path)

		skills, err := c.findSkillFiles(ctx, src, src.Path, 0)
		if err != nil {
			return nil, fmt.Errorf("crawling %s: %w", src.Repo, err)
		}
		for i := range skills {
			skills[i].Source = src.Name
		}
		all = append(all, skills...)

		slog.Info("source crawled", "repo", src.Repo, "skills", len(skills))
	}
	return all, nil
}

// findSkillFiles recursively lists a repo path looking for SKILL.md files.
func (c *Crawler) findSkillFiles(ctx context.Context, src Source, dir string, depth int) ([]models.SkillRecord, error) {
	if depth > maxDepth {
		return nil, nil
	}

	items, err := c.listDir(ctx, src.Repo, dir)
	if err != nil {
		return nil, err
	}

	var skills []models.SkillRecord
	for _, item := range items {
		switch {
		case item.Type == "file" && isSkillFile(item.Name):
			content, err := c.fetchFile(ctx, item.DownloadURL)
			if err != nil {
				slog.Warn("skipping unfetchable skill file", "path", item.Path, "error", err)
				continue
			}
			skills = append(skills, models.SkillRecord{
				Name:    skillName(src, item.Path),
				Repo:    src.Repo,
				Path:    item.Path,
				URL:     item.HTMLURL,
				Content: content,
			})
			if err := sleepCtx(ctx, c.pause); err != nil {
				return nil, err
			}

		case item.Type == "dir" && depth < maxDepth:
			nested, err := c.findSkillFiles(ctx, src, item.Path, depth+1)
			if err != nil {
				return nil, err
			}
			skills = append(skills, nested...)
		}
	}
	return skills, nil
}

func (c *Crawler) listDir(ctx context.Context, repo, dir string) ([]contentItem, error) {
	url := fmt.Sprintf("%s/repos/%s/contents/%s", c.apiBase, repo, dir)

	body, err := c.get(ctx, url, true)
	if err != nil {
		return nil, err
	}

	var items []contentItem
	if err := json.Unmarshal(body, &items); err != nil {
		// A file path returns an object rather than a list; treat as empty.
		return nil, nil
	}
	return items, nil
}

func (c *Crawler) fetchFile(ctx context.Context, downloadURL string) (string, error) {
	body, err := c.get(ctx, downloadURL, false)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// get performs one GET with retries on transient failures.
func (c *Crawler) get(ctx context.Context, url string, api bool) ([]byte, error) {
	var body []byte

	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			if api {
				req.Header.Set("Accept", "application/vnd.github.v3+json")
			}
			if c.token != "" {
				req.Header.Set("Authorization", "Bearer "+c.token)
			}

			resp, err := c.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			switch {
			case resp.StatusCode == http.StatusOK:
				body, err = io.ReadAll(resp.Body)
				return err
			case resp.StatusCode == http.StatusForbidden:
				return retry.Unrecoverable(fmt.Errorf("rate limited by GitHub (provide a token or wait): %s", url))
			case resp.StatusCode == http.StatusNotFound:
				return retry.Unrecoverable(fmt.Errorf("not found: %s", url))
			default:
				return fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
			}
		},
		retry.Context(ctx),
		retry.Attempts(fetchAttempts),
		retry.Delay(time.Second),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// skillName derives the record name from the file path: the containing
// directory when the source has a skills subdirectory, otherwise the file
// stem.
func skillName(src Source, filePath string) string {
	if src.Path != "" {
		return path.Base(path.Dir(filePath))
	}
	base := path.Base(filePath)
	return strings.TrimSuffix(base, path.Ext(base))
}

func isSkillFile(name string) bool {
	upper := strings.ToUpper(name)
	return upper == "SKILL.MD" || upper == "SKILLS.MD"
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
