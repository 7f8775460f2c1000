package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jayeshbali/readrabbit/internal/api"
	"github.com/jayeshbali/readrabbit/internal/article"
	"github.com/jayeshbali/readrabbit/internal/browser"
	"github.com/jayeshbali/readrabbit/internal/config"
	"github.com/jayeshbali/readrabbit/internal/history"
	"github.com/jayeshbali/readrabbit/internal/saved"
)

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeHome mode = iota
	modeDeck
	modeList
	modeSaved
	modeDiscover
	modeAdmin
	modeHelp
)

// discoverTimeout is generous: an agent run does web searches and several
// LLM calls on the backend.
const discoverTimeout = 2 * time.Minute

type App struct {
	cfg     *config.Config
	client  *api.Client
	saved   *saved.Store
	history *history.Log

	// The current dealt set. Mode switches never clear it; only an
	// explicit redeal or dismiss changes membership.
	articles []article.Article
	cursor   int

	mode     mode
	viewMode mode // deck or list: which density the article set renders in
	focus    focusPane

	width  int
	height int

	// Sub-components
	input   textinput.Model
	spinner spinner.Model

	// State
	loading       bool
	err           error
	note          string
	currentDate   string
	updateVersion string
	previewScroll int

	// Saved view
	savedCursor int

	// Discover view
	discovery      *api.DiscoverResult
	discoverCursor int
	discovering    bool
	savedRecs      map[string]bool
	inputFocused   bool

	// Admin view
	catalog     []article.Article
	adminCursor int
	stats       *api.Stats
	adminAdding bool
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg           *config.Config
	Client        *api.Client
	Saved         *saved.Store
	History       *history.Log
	StartView     string // "", "deck", or "list"
	UpdateVersion string
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Paste a URL or describe what you want to read..."
	ti.Prompt = inputPromptStyle.Render("> ")
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	startMode := modeHome
	viewMode := modeDeck
	switch opts.StartView {
	case "deck":
		startMode = modeDeck
	case "list":
		startMode = modeList
		viewMode = modeList
	}

	return &App{
		cfg:           opts.Cfg,
		client:        opts.Client,
		saved:         opts.Saved,
		history:       opts.History,
		input:         ti,
		spinner:       sp,
		mode:          startMode,
		viewMode:      viewMode,
		currentDate:   time.Now().Format("Jan 2"),
		updateVersion: opts.UpdateVersion,
		savedRecs:     make(map[string]bool),
	}
}

func (a *App) Init() tea.Cmd {
	// Only deal immediately when starting in an article view
	if a.mode == modeDeck || a.mode == modeList {
		a.loading = true
		return tea.Batch(a.dealCmd(), a.spinner.Tick)
	}
	return nil
}

// dealCmd fetches a fresh random sample, replacing the whole dealt set.
func (a *App) dealCmd() tea.Cmd {
	client := a.client
	count := a.cfg.GetDealCount()
	timeout := a.cfg.TimeoutDuration()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		articles, err := client.RandomArticles(ctx, count)
		if err != nil {
			return apiErrMsg{err: err}
		}
		return dealtMsg{articles: articles}
	}
}

// dismissCmd tells the backend to stop showing an article, then asks for a
// single replacement to splice into the same slot. A failed replacement
// fetch still counts as a successful dismiss.
func (a *App) dismissCmd(art article.Article) tea.Cmd {
	client := a.client
	timeout := a.cfg.TimeoutDuration()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := client.Dismiss(ctx, art.ID); err != nil {
			return apiErrMsg{err: err}
		}
		repl, err := client.RandomArticles(ctx, 1)
		if err != nil || len(repl) == 0 {
			return dismissedMsg{id: art.ID}
		}
		return dismissedMsg{id: art.ID, replacement: &repl[0]}
	}
}

func (a *App) discoverCmd(input string) tea.Cmd {
	client := a.client
	req := api.DiscoverRequest{
		Input:      input,
		InputType:  a.cfg.AgentInputType(),
		MaxResults: a.cfg.AgentMaxResults(),
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), discoverTimeout)
		defer cancel()
		result, err := client.Discover(ctx, req)
		if err != nil {
			return apiErrMsg{err: err}
		}
		return discoverDoneMsg{result: result}
	}
}

func (a *App) saveRecCmd(rec api.Recommendation) tea.Cmd {
	client := a.client
	timeout := a.cfg.TimeoutDuration()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		created, err := client.SaveRecommendation(ctx, rec)
		if err != nil {
			return apiErrMsg{err: err}
		}
		return recSavedMsg{url: rec.URL, article: created}
	}
}

func (a *App) loadCatalogCmd() tea.Cmd {
	client := a.client
	timeout := a.cfg.TimeoutDuration()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		articles, err := client.ListArticles(ctx, 200)
		if err != nil {
			return apiErrMsg{err: err}
		}
		return catalogMsg{articles: articles}
	}
}

func (a *App) loadStatsCmd() tea.Cmd {
	client := a.client
	timeout := a.cfg.TimeoutDuration()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		stats, err := client.AdminStats(ctx)
		if err != nil {
			// Stats are decoration on the admin screen; don't clobber it
			return nil
		}
		return statsMsg{stats: stats}
	}
}

func (a *App) deleteCmd(id string) tea.Cmd {
	client := a.client
	timeout := a.cfg.TimeoutDuration()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := client.DeleteArticle(ctx, id); err != nil {
			return apiErrMsg{err: err}
		}
		return articleDeletedMsg{id: id}
	}
}

func (a *App) addSmartCmd(rawURL string) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		// Metadata extraction goes through the backend's LLM
		ctx, cancel := context.WithTimeout(context.Background(), discoverTimeout)
		defer cancel()
		created, err := client.AddArticleSmart(ctx, rawURL)
		if err != nil {
			return apiErrMsg{err: err}
		}
		return articleAddedMsg{article: created}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return apiErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) recordEvent(action string, art article.Article) {
	if a.history == nil {
		return
	}
	// Best effort: a full history is not worth interrupting reading for
	a.history.Record(history.Event{
		ArticleID: art.ID,
		Title:     art.Title,
		Source:    art.Source,
		Action:    action,
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error and note on any keypress
		a.err = nil
		a.note = ""
		return a.handleKey(msg)

	case dealtMsg:
		a.loading = false
		a.articles = msg.articles
		a.cursor = 0
		a.previewScroll = 0
		for _, art := range a.articles {
			a.recordEvent(history.ActionViewed, art)
		}
		return a, nil

	case dismissedMsg:
		a.loading = false
		a.reconcileDismiss(msg.id, msg.replacement)
		return a, nil

	case apiErrMsg:
		a.err = msg.err
		a.loading = false
		a.discovering = false
		return a, nil

	case discoverDoneMsg:
		a.discovering = false
		a.discovery = msg.result
		a.discoverCursor = 0
		a.inputFocused = false
		a.input.Blur()
		for _, rec := range msg.result.Recommendations {
			a.recordEvent(history.ActionDiscovered, article.Article{Title: rec.Title, Source: rec.Source})
		}
		return a, nil

	case recSavedMsg:
		a.savedRecs[msg.url] = true
		a.note = "added to catalog: " + msg.article.Title
		return a, nil

	case catalogMsg:
		a.loading = false
		a.catalog = msg.articles
		if a.adminCursor >= len(a.catalog) {
			a.adminCursor = max(0, len(a.catalog)-1)
		}
		return a, nil

	case statsMsg:
		stats := msg.stats
		a.stats = &stats
		return a, nil

	case articleDeletedMsg:
		a.loading = false
		for i := range a.catalog {
			if a.catalog[i].ID == msg.id {
				a.catalog = append(a.catalog[:i], a.catalog[i+1:]...)
				break
			}
		}
		if a.adminCursor >= len(a.catalog) {
			a.adminCursor = max(0, len(a.catalog)-1)
		}
		return a, a.loadStatsCmd()

	case articleAddedMsg:
		a.loading = false
		a.adminAdding = false
		a.input.Blur()
		a.input.SetValue("")
		a.catalog = append([]article.Article{msg.article}, a.catalog...)
		a.note = "added: " + msg.article.Title
		return a, a.loadStatsCmd()

	case spinner.TickMsg:
		if a.loading || a.discovering {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

// reconcileDismiss removes the dismissed article from the dealt set,
// splicing the replacement into the same slot when it isn't already on
// screen. Ids stay unique within the displayed list.
func (a *App) reconcileDismiss(id string, replacement *article.Article) {
	for i := range a.articles {
		if a.articles[i].ID != id {
			continue
		}
		if replacement != nil && !article.ContainsID(a.articles, replacement.ID) {
			a.articles[i] = *replacement
			a.recordEvent(history.ActionViewed, *replacement)
		} else {
			a.articles = append(a.articles[:i], a.articles[i+1:]...)
		}
		break
	}
	if a.cursor >= len(a.articles) {
		a.cursor = max(0, len(a.articles)-1)
	}
	a.previewScroll = 0
}

// saveCurrent adds the cursored article to the saved set. Duplicate ids
// are a no-op.
func (a *App) saveCurrent() {
	if len(a.articles) == 0 || a.cursor >= len(a.articles) {
		return
	}
	art := a.articles[a.cursor]
	added, err := a.saved.Add(art)
	if err != nil {
		a.err = err
		return
	}
	if !added {
		a.note = "already saved"
		return
	}
	a.note = "saved"
	a.recordEvent(history.ActionSaved, art)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeHome:
		return a.handleHomeKey(msg)
	case modeDeck:
		return a.handleDeckKey(msg)
	case modeList:
		return a.handleListKey(msg)
	case modeSaved:
		return a.handleSavedKey(msg)
	case modeDiscover:
		return a.handleDiscoverKey(msg)
	case modeAdmin:
		return a.handleAdminKey(msg)
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = a.viewMode
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "d", "1", "enter":
		a.mode = modeDeck
		a.viewMode = modeDeck
		return a, a.maybeDeal()
	case "l", "2":
		a.mode = modeList
		a.viewMode = modeList
		return a, a.maybeDeal()
	case "b", "3":
		a.mode = modeSaved
		a.savedCursor = 0
		return a, nil
	case "g", "4":
		return a, a.enterDiscover()
	case "a", "5":
		return a, a.enterAdmin()
	case "?":
		a.mode = modeHelp
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

// maybeDeal fetches articles only when the dealt set is empty; switching
// modes never discards what's already on screen.
func (a *App) maybeDeal() tea.Cmd {
	if len(a.articles) > 0 || a.loading {
		return nil
	}
	a.loading = true
	return tea.Batch(a.dealCmd(), a.spinner.Tick)
}

// sharedArticleKey handles actions common to the deck and list views.
func (a *App) sharedArticleKey(key string) (tea.Cmd, bool) {
	switch key {
	case "o", "enter":
		if len(a.articles) > 0 && a.cursor < len(a.articles) {
			art := a.articles[a.cursor]
			a.recordEvent(history.ActionOpened, art)
			return openBrowserCmd(art.URL), true
		}
		return nil, true
	case "s":
		a.saveCurrent()
		return nil, true
	case "x", "d":
		if len(a.articles) > 0 && a.cursor < len(a.articles) && !a.loading {
			a.loading = true
			art := a.articles[a.cursor]
			a.recordEvent(history.ActionDismissed, art)
			return tea.Batch(a.dismissCmd(art), a.spinner.Tick), true
		}
		return nil, true
	case "r":
		if !a.loading {
			a.loading = true
			return tea.Batch(a.dealCmd(), a.spinner.Tick), true
		}
		return nil, true
	case "v":
		if a.viewMode == modeDeck {
			a.viewMode = modeList
		} else {
			a.viewMode = modeDeck
		}
		a.mode = a.viewMode
		return nil, true
	case "b":
		a.mode = modeSaved
		a.savedCursor = 0
		return nil, true
	case "g":
		return a.enterDiscover(), true
	case "a":
		return a.enterAdmin(), true
	case "h":
		a.mode = modeHome
		return nil, true
	case "?":
		a.mode = modeHelp
		return nil, true
	case "q":
		return tea.Quit, true
	}
	return nil, false
}

func (a *App) handleDeckKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n", "j", "right", "down":
		if a.cursor < len(a.articles)-1 {
			a.cursor++
		}
		return a, nil
	case "p", "k", "left", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	}
	if cmd, ok := a.sharedArticleKey(msg.String()); ok {
		return a, cmd
	}
	return a, nil
}

func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if a.focus == focusList && a.cursor < len(a.articles)-1 {
			a.cursor++
			a.previewScroll = 0
		} else if a.focus == focusPreview {
			a.previewScroll++
		}
		return a, nil
	case "k", "up":
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
			a.previewScroll = 0
		} else if a.focus == focusPreview && a.previewScroll > 0 {
			a.previewScroll--
		}
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusPreview
		} else {
			a.focus = focusList
		}
		return a, nil
	}
	if cmd, ok := a.sharedArticleKey(msg.String()); ok {
		return a, cmd
	}
	return a, nil
}

func (a *App) handleSavedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	savedArticles := a.saved.All()
	switch msg.String() {
	case "j", "down":
		if a.savedCursor < len(savedArticles)-1 {
			a.savedCursor++
		}
		return a, nil
	case "k", "up":
		if a.savedCursor > 0 {
			a.savedCursor--
		}
		return a, nil
	case "o", "enter":
		if len(savedArticles) > 0 && a.savedCursor < len(savedArticles) {
			art := savedArticles[a.savedCursor]
			a.recordEvent(history.ActionOpened, art)
			return a, openBrowserCmd(art.URL)
		}
		return a, nil
	case "x", "d":
		if len(savedArticles) > 0 && a.savedCursor < len(savedArticles) {
			art := savedArticles[a.savedCursor]
			if _, err := a.saved.Remove(art.ID); err != nil {
				a.err = err
				return a, nil
			}
			a.recordEvent(history.ActionUnsaved, art)
			if a.savedCursor >= a.saved.Len() {
				a.savedCursor = max(0, a.saved.Len()-1)
			}
		}
		return a, nil
	case "esc", "v":
		a.mode = a.viewMode
		return a, nil
	case "h":
		a.mode = modeHome
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) enterDiscover() tea.Cmd {
	a.mode = modeDiscover
	if a.discovery == nil {
		a.inputFocused = true
		a.input.Focus()
		return textinput.Blink
	}
	return nil
}

func (a *App) handleDiscoverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.inputFocused {
		switch msg.String() {
		case "esc":
			a.inputFocused = false
			a.input.Blur()
			if a.discovery == nil {
				a.mode = a.viewMode
			}
			return a, nil
		case "enter":
			query := strings.TrimSpace(a.input.Value())
			if query == "" || a.discovering {
				return a, nil
			}
			a.discovering = true
			a.inputFocused = false
			a.input.Blur()
			return a, tea.Batch(a.discoverCmd(query), a.spinner.Tick)
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "j", "down":
		if a.discovery != nil && a.discoverCursor < len(a.discovery.Recommendations)-1 {
			a.discoverCursor++
		}
		return a, nil
	case "k", "up":
		if a.discoverCursor > 0 {
			a.discoverCursor--
		}
		return a, nil
	case "o", "enter":
		if rec, ok := a.currentRec(); ok {
			return a, openBrowserCmd(rec.URL)
		}
		return a, nil
	case "s":
		if rec, ok := a.currentRec(); ok && !a.savedRecs[rec.URL] {
			return a, a.saveRecCmd(rec)
		}
		return a, nil
	case "i", "/":
		a.inputFocused = true
		a.input.Focus()
		return a, textinput.Blink
	case "esc", "v":
		a.mode = a.viewMode
		return a, nil
	case "h":
		a.mode = modeHome
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) currentRec() (api.Recommendation, bool) {
	if a.discovery == nil || a.discoverCursor >= len(a.discovery.Recommendations) {
		return api.Recommendation{}, false
	}
	return a.discovery.Recommendations[a.discoverCursor], true
}

func (a *App) enterAdmin() tea.Cmd {
	a.mode = modeAdmin
	a.loading = true
	return tea.Batch(a.loadCatalogCmd(), a.loadStatsCmd(), a.spinner.Tick)
}

func (a *App) handleAdminKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.adminAdding {
		switch msg.String() {
		case "esc":
			a.adminAdding = false
			a.input.Blur()
			a.input.SetValue("")
			return a, nil
		case "enter":
			rawURL := strings.TrimSpace(a.input.Value())
			if rawURL == "" || a.loading {
				return a, nil
			}
			a.loading = true
			return a, tea.Batch(a.addSmartCmd(rawURL), a.spinner.Tick)
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "j", "down":
		if a.adminCursor < len(a.catalog)-1 {
			a.adminCursor++
		}
		return a, nil
	case "k", "up":
		if a.adminCursor > 0 {
			a.adminCursor--
		}
		return a, nil
	case "o", "enter":
		if len(a.catalog) > 0 && a.adminCursor < len(a.catalog) {
			return a, openBrowserCmd(a.catalog[a.adminCursor].URL)
		}
		return a, nil
	case "x", "d":
		if len(a.catalog) > 0 && a.adminCursor < len(a.catalog) && !a.loading {
			a.loading = true
			return a, tea.Batch(a.deleteCmd(a.catalog[a.adminCursor].ID), a.spinner.Tick)
		}
		return a, nil
	case "n":
		a.adminAdding = true
		a.input.Placeholder = "Article URL to add..."
		a.input.SetValue("")
		a.input.Focus()
		return a, textinput.Blink
	case "r":
		if !a.loading {
			a.loading = true
			return a, tea.Batch(a.loadCatalogCmd(), a.loadStatsCmd(), a.spinner.Tick)
		}
		return a, nil
	case "esc", "v":
		a.mode = a.viewMode
		return a, nil
	case "h":
		a.mode = modeHome
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  readrabbit")
	}

	switch a.mode {
	case modeHome:
		return a.withBottomBar(
			renderHomeScreen(a.width, a.height, a.updateVersion),
			"d deal  l list  b saved  g discover  a admin  q quit",
		)
	case modeDeck:
		return a.renderDeck()
	case modeList:
		return a.renderListMode()
	case modeSaved:
		return a.renderSaved()
	case modeDiscover:
		return a.renderDiscover()
	case modeAdmin:
		return a.renderAdmin()
	case modeHelp:
		return a.withBottomBar(a.renderHelp(), "? close  q quit")
	}
	return ""
}

func (a *App) withBottomBar(content string, hints string) string {
	bar := a.renderBottomBar(hints)
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("readrabbit")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Reading") + "\n" +
		"  n/p, j/k      Next / previous article\n" +
		"  o, enter      Open article in browser\n" +
		"  s             Save article\n" +
		"  x, d          Dismiss (never show again)\n" +
		"  r             Deal a fresh set\n" +
		"  v             Toggle deck / list view\n\n" +
		dim.Render("Screens") + "\n" +
		"  b             Saved articles\n" +
		"  g             Discover similar articles (agent)\n" +
		"  a             Admin: curate the catalog\n" +
		"  h             Home screen\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c     Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
