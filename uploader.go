package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	newUploadPath = "/admin/uploads/new"
	uploadsPath   = "/admin/uploads"

	sessionCookie = "_lml_session"
	commitLabel   = "Create Upload"

	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
	acceptHTML       = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

// Uploader submits content uploads to the LML admin endpoint, authenticating
// every request with a pre-obtained session cookie.
type Uploader struct {
	baseURL string
	client  *resty.Client
	verbose bool
}

// NewUploader creates an uploader for baseURL authenticated by sessionID.
func NewUploader(baseURL, sessionID, userAgent string, verbose bool) *Uploader {
	baseURL = strings.TrimRight(baseURL, "/")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("user-agent", userAgent)
	client.SetCookie(&http.Cookie{Name: sessionCookie, Value: sessionID})
	// Rails signals upload creation with a 302, so the POST response must be
	// inspected as-is; redirects are only followed when fetching the form.
	client.SetRedirectPolicy(resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		if len(via) > 0 && via[0].Method == http.MethodPost {
			return http.ErrUseLastResponse
		}
		return nil
	}))

	return &Uploader{
		baseURL: baseURL,
		client:  client,
		verbose: verbose,
	}
}

// fetchToken retrieves the upload form page and extracts a fresh CSRF token.
// Each token is valid for exactly one submission.
func (u *Uploader) fetchToken() (string, error) {
	formURL := u.baseURL + newUploadPath
	fmt.Printf("Fetching CSRF token from %s\n", formURL)

	res, err := u.client.R().
		SetHeader("accept", acceptHTML).
		Get(newUploadPath)
	if err != nil {
		return "", fmt.Errorf("fetching CSRF token: %w", err)
	}
	if res.StatusCode() >= http.StatusBadRequest {
		return "", &HTTPError{StatusCode: res.StatusCode(), URL: formURL}
	}

	token, err := extractToken(res.String())
	if err != nil {
		if u.verbose {
			dumpBody("Response HTML", res.String())
		}
		return "", fmt.Errorf("%w: you may not be authenticated properly", err)
	}

	fmt.Printf("Found CSRF token: %s\n", tokenPreview(token))
	return token, nil
}

// Submit performs the full exchange: fetch a token, POST the simulated form,
// classify the response. Transport and token-extraction failures surface as
// errors; HTTP outcomes, including validation rejections, are reported in
// the result.
func (u *Uploader) Submit(req UploadRequest) (*SubmissionResult, error) {
	token, err := u.fetchToken()
	if err != nil {
		return nil, err
	}

	form := map[string]string{
		tokenFieldName:            token,
		"lml_upload[venue_label]": "",
		"lml_upload[venue_id]":    "",
		"lml_upload[source]":      req.Source,
		"lml_upload[content]":     req.Content,
		"commit":                  commitLabel,
	}
	headers := map[string]string{
		"accept":       acceptHTML,
		"content-type": "application/x-www-form-urlencoded",
		"origin":       u.baseURL,
		"referer":      u.baseURL + newUploadPath,
	}

	if u.verbose {
		dumpRequest(u.baseURL+uploadsPath, headers, form)
	}

	res, err := u.client.R().
		SetHeaders(headers).
		SetFormData(form).
		Post(uploadsPath)
	if err != nil {
		if res != nil && res.RawResponse != nil {
			return nil, fmt.Errorf("sending upload request (status %d, body %q): %w",
				res.StatusCode(), truncate(res.String(), bodyDumpLimit), err)
		}
		return nil, fmt.Errorf("sending upload request: %w", err)
	}

	if u.verbose {
		dumpResponse(res)
	}

	return classify(res), nil
}

func classify(res *resty.Response) *SubmissionResult {
	result := &SubmissionResult{StatusCode: res.StatusCode()}
	switch res.StatusCode() {
	case http.StatusFound:
		result.Status = StatusSuccess
		result.Location = res.Header().Get("Location")
	case http.StatusOK, http.StatusCreated:
		result.Status = StatusSuccess
	case http.StatusUnprocessableEntity:
		result.Status = StatusValidationFailed
		result.Errors = scrapeErrorMessages(res.String())
	default:
		result.Status = StatusUnexpected
	}
	return result
}
