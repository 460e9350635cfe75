// Package preview serves the browser front end for the infographic generator:
// a form for provider, model, key and content, the stage-1 trace, a live
// preview of the generated slide and a download of the latest result.
package preview

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"infoslide/src/ai"
	"infoslide/src/infographic"
)

//go:embed templates/index.html
var templatesFS embed.FS

// Runner is the part of infographic.Pipeline the server needs.
type Runner interface {
	Run(ctx context.Context, req infographic.Request) (*infographic.Result, error)
}

type Options struct {
	DefaultProvider ai.Provider
	DefaultModel    string
	// CredentialFor supplies a configured key when the form leaves it blank.
	CredentialFor func(ai.Provider) string
	Logger        *slog.Logger
}

type Server struct {
	runner   Runner
	opts     Options
	logger   *slog.Logger
	page     *template.Template
	markdown goldmark.Markdown
	examples []infographic.Example

	mu     sync.Mutex
	latest string
}

func New(runner Runner, opts Options) (*Server, error) {
	if runner == nil {
		return nil, errors.New("pipeline runner required")
	}

	page, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	examples, err := infographic.Examples()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if !opts.DefaultProvider.Valid() {
		opts.DefaultProvider = ai.Anthropic
	}
	if opts.DefaultModel == "" {
		opts.DefaultModel = ai.DefaultModel(opts.DefaultProvider)
	}

	return &Server{
		runner:   runner,
		opts:     opts,
		logger:   logger,
		page:     page,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		examples: examples,
	}, nil
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logMiddleware)

	r.Get("/", s.handleIndex)
	r.Post("/generate", s.handleGenerate)
	r.Get("/download/"+infographic.DefaultArtifactName, s.handleDownload)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// --- Handlers ---

type formState struct {
	Provider      ai.Provider
	Model         string
	SourceMode    string
	Example       string
	Content       string
	KeyConfigured bool
}

type modelOption struct {
	Name     string
	Display  string
	Selected bool
}

type providerOption struct {
	Key      string
	Name     string
	Selected bool
	Models   []modelOption
}

type pageData struct {
	Providers []providerOption
	Examples  []infographic.Example
	Form      formState
	Warning   string
	Error     string
	Trace     template.HTML
	HTML      string
	Summary   *infographic.Summary
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	form := formState{
		Provider:   s.opts.DefaultProvider,
		Model:      s.opts.DefaultModel,
		SourceMode: "custom",
	}
	s.render(w, http.StatusOK, s.newPage(form))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	provider, err := ai.ParseProvider(r.PostForm.Get("provider"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := formState{
		Provider:   provider,
		Model:      r.PostForm.Get("model"),
		SourceMode: r.PostForm.Get("source_mode"),
		Example:    r.PostForm.Get("example"),
		Content:    r.PostForm.Get("content"),
	}
	data := s.newPage(form)

	if !ai.IsKnownModel(provider, form.Model) {
		form.Model = ai.DefaultModel(provider)
		data = s.newPage(form)
		data.Warning = "The selected model does not belong to " + provider.String() + "; using " + form.Model + "."
	}

	source := form.Content
	if form.SourceMode == "example" {
		ex, err := infographic.ExampleByName(form.Example)
		if err != nil {
			data.Warning = err.Error()
			s.render(w, http.StatusOK, data)
			return
		}
		source = ex.Text
	}

	credential := strings.TrimSpace(r.PostForm.Get("api_key"))
	if credential == "" && s.opts.CredentialFor != nil {
		credential = s.opts.CredentialFor(provider)
	}

	res, err := s.runner.Run(r.Context(), infographic.Request{
		SourceText: source,
		Provider:   provider,
		Model:      form.Model,
		Credential: credential,
	})
	if res != nil && res.Structure.RawText != "" {
		data.Trace = s.renderTrace(res.Structure.RawText)
	}

	switch {
	case errors.Is(err, infographic.ErrMissingInput):
		data.Warning = "Please enter both the content and an API key to continue."
		s.render(w, http.StatusOK, data)
		return
	case errors.Is(err, infographic.ErrNoStructuredJSON):
		data.Error = "Could not find structured JSON. Please try again."
		s.render(w, http.StatusBadGateway, data)
		return
	case err != nil:
		data.Error = "An error occurred: " + err.Error()
		s.render(w, http.StatusBadGateway, data)
		return
	}

	html := res.HTML()
	s.mu.Lock()
	s.latest = html
	s.mu.Unlock()

	data.HTML = html
	if summary, err := infographic.Inspect(html); err == nil {
		data.Summary = &summary
	}
	s.render(w, http.StatusOK, data)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	html := s.latest
	s.mu.Unlock()

	if html == "" {
		http.Error(w, "no infographic generated yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+infographic.DefaultArtifactName+`"`)
	_, _ = w.Write([]byte(html))
}

// --- Helpers ---

func (s *Server) newPage(form formState) pageData {
	form.KeyConfigured = s.opts.CredentialFor != nil && s.opts.CredentialFor(form.Provider) != ""

	var providers []providerOption
	for _, p := range ai.Providers() {
		opt := providerOption{Key: p.Key(), Name: p.String(), Selected: p == form.Provider}
		for _, m := range ai.Models(p) {
			opt.Models = append(opt.Models, modelOption{
				Name:     m.ModelName,
				Display:  m.DisplayName,
				Selected: p == form.Provider && m.ModelName == form.Model,
			})
		}
		providers = append(providers, opt)
	}

	return pageData{
		Providers: providers,
		Examples:  s.examples,
		Form:      form,
	}
}

var thinkingTags = strings.NewReplacer(
	"<thinking>", "\n\n**Reasoning**\n\n",
	"</thinking>", "\n\n",
)

// renderTrace turns the stage-1 Markdown into HTML. Raw HTML in the model output is dropped.
func (s *Server) renderTrace(text string) template.HTML {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(thinkingTags.Replace(text)), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String())
}

func (s *Server) render(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.logger.Error("failed to render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
