package gui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/polyglot/internal"
	"codeberg.org/snonux/polyglot/internal/detect"
	"codeberg.org/snonux/polyglot/internal/language"
	"codeberg.org/snonux/polyglot/internal/translate"
)

// autoOption is the detection entry in the source language selector.
const autoOption = "Auto"

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	inputEntry    *CustomMultiLineEntry
	outputEntry   *widget.Entry
	analysisLabel *widget.Label
	sourceSelect  *widget.Select
	targetSelect  *widget.Select
	translateBtn  *ttwidget.Button
	swapBtn       *ttwidget.Button
	clearCacheBtn *ttwidget.Button
	statusLabel   *widget.Label
	logViewer     *LogViewer

	// Translation backend
	service *translate.Service

	// Configuration
	config *Config

	// Background processing
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex

	// requestID tears stale results away from the UI: only the answer
	// to the most recent click is displayed.
	requestID int

	// lastDetected is the source language of the most recent
	// auto-detected translation, guarded by mu.
	lastDetected language.Tag
}

// Config holds GUI application configuration
type Config struct {
	DefaultTarget string
	DefaultSource string
	Backend       string
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultTarget: "English",
		DefaultSource: autoOption,
		Backend:       "nllb",
	}
}

// New creates a new GUI application around an existing translation
// service. The service's model session stays lazy: nothing is loaded
// until the first translation.
func New(service *translate.Service, config *Config) *Application {
	if config == nil {
		config = DefaultConfig()
	} else {
		defaults := DefaultConfig()
		if config.DefaultTarget == "" {
			config.DefaultTarget = defaults.DefaultTarget
		}
		if config.DefaultSource == "" {
			config.DefaultSource = defaults.DefaultSource
		}
		if config.Backend == "" {
			config.Backend = defaults.Backend
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	myApp := app.NewWithID("org.codeberg.snonux.polyglot")

	a := &Application{
		app:     myApp,
		service: service,
		config:  config,
		ctx:     ctx,
		cancel:  cancel,
	}

	a.setupUI()

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("polyglot v%s - Mixed-Language Translator", internal.Version))
	a.window.Resize(fyne.NewSize(800, 650))

	// Input section
	a.inputEntry = NewCustomMultiLineEntry()
	a.inputEntry.SetPlaceHolder("Text to translate (languages may be mixed)... Ctrl+Return to translate")
	a.inputEntry.Wrapping = fyne.TextWrapWord
	a.inputEntry.SetOnEscape(func() {
		a.window.Canvas().Unfocus()
	})

	// Language selectors
	sourceOptions := append([]string{autoOption}, language.AllNames()...)
	a.sourceSelect = widget.NewSelect(sourceOptions, nil)
	a.sourceSelect.SetSelected(a.sourceOption(a.config.DefaultSource))

	a.targetSelect = widget.NewSelect(language.AllNames(), nil)
	a.targetSelect.SetSelected(a.targetOption(a.config.DefaultTarget))

	// Action buttons (tooltips are set after the tooltip layer exists)
	a.translateBtn = ttwidget.NewButtonWithIcon("Translate", theme.ConfirmIcon(), a.onTranslate)
	a.translateBtn.Importance = widget.HighImportance

	a.swapBtn = ttwidget.NewButtonWithIcon("", theme.ViewRefreshIcon(), a.onSwapLanguages)

	a.clearCacheBtn = ttwidget.NewButtonWithIcon("", theme.DeleteIcon(), a.onClearCache)

	selectorRow := container.NewHBox(
		widget.NewLabel("From:"),
		a.sourceSelect,
		a.swapBtn,
		widget.NewLabel("To:"),
		a.targetSelect,
		widget.NewSeparator(),
		a.translateBtn,
		a.clearCacheBtn,
	)

	// Output section
	a.outputEntry = widget.NewMultiLineEntry()
	a.outputEntry.SetPlaceHolder("Translation will appear here...")
	a.outputEntry.Wrapping = fyne.TextWrapWord
	a.outputEntry.Disable()

	a.analysisLabel = widget.NewLabel("")
	a.analysisLabel.Wrapping = fyne.TextWrapWord
	a.analysisLabel.TextStyle = fyne.TextStyle{Monospace: true}
	analysisScroll := container.NewScroll(a.analysisLabel)
	analysisScroll.SetMinSize(fyne.NewSize(0, 120))

	analysisContainer := container.NewBorder(
		widget.NewLabel("Detected languages:"),
		nil,
		nil,
		nil,
		analysisScroll,
	)

	textSection := container.NewVSplit(
		container.NewScroll(a.inputEntry),
		container.NewScroll(a.outputEntry),
	)
	textSection.SetOffset(0.5)

	displaySection := container.NewBorder(
		nil,
		analysisContainer,
		nil, nil,
		textSection,
	)

	// Status section with captured backend log
	a.statusLabel = widget.NewLabel("Ready")
	a.logViewer = NewLogViewer()

	statusSection := container.NewVBox(
		a.statusLabel,
		widget.NewSeparator(),
		a.logViewer,
	)

	content := container.NewBorder(
		container.NewVBox(
			selectorRow,
			widget.NewSeparator(),
		),
		statusSection,
		nil, nil,
		displaySection,
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))

	a.translateBtn.SetToolTip("Translate the input text (Ctrl+Return)")
	a.swapBtn.SetToolTip("Swap source and target languages")
	a.clearCacheBtn.SetToolTip("Unload the model session and clear cached translations")

	a.window.SetOnClosed(func() {
		a.logViewer.StopCapture()
		a.cancel()
		a.wg.Wait()
	})

	a.setupKeyboardShortcuts()
}

// setupKeyboardShortcuts registers window-level shortcuts
func (a *Application) setupKeyboardShortcuts() {
	translateShortcut := &desktop.CustomShortcut{
		KeyName:  fyne.KeyReturn,
		Modifier: fyne.KeyModifierControl,
	}
	a.window.Canvas().AddShortcut(translateShortcut, func(fyne.Shortcut) {
		a.onTranslate()
	})
}

// Run starts the GUI application
func (a *Application) Run() {
	a.logViewer.StartCapture()
	a.window.ShowAndRun()
}

// onTranslate handles a translation request
func (a *Application) onTranslate() {
	text := strings.TrimSpace(a.inputEntry.Text)
	if text == "" {
		a.updateStatus("Nothing to translate")
		return
	}

	source, err := a.selectedSource()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	target, err := language.FromName(a.targetSelect.Selected)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	a.mu.Lock()
	a.requestID++
	id := a.requestID
	a.mu.Unlock()

	a.translateBtn.Disable()
	a.updateStatus("Translating...")

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		result, err := a.service.Translate(a.ctx, text, source, target)

		a.mu.Lock()
		stale := id != a.requestID
		a.mu.Unlock()
		if stale {
			return
		}

		fyne.Do(func() {
			a.translateBtn.Enable()

			if err != nil {
				a.showTranslationError(err)
				return
			}

			a.outputEntry.SetText(result.Text)
			a.analysisLabel.SetText(formatAnalysis(result.Analysis))

			status := "Done"
			if source == language.Auto && result.Source != language.Unknown {
				a.mu.Lock()
				a.lastDetected = result.Source
				a.mu.Unlock()
				status = fmt.Sprintf("Done (detected source: %s)", language.Name(result.Source))
			}
			if result.Warning != "" {
				status += " - " + result.Warning
			}
			a.updateStatus(status)
		})
	}()
}

// onSwapLanguages exchanges the selected source and target. With Auto
// as source the swap uses the last detected source language as the new
// target, so "auto -> Arabic" becomes "Arabic -> <detected>" instead
// of both selectors showing Arabic.
func (a *Application) onSwapLanguages() {
	source := a.sourceSelect.Selected
	target := a.targetSelect.Selected

	if source == autoOption {
		a.sourceSelect.SetSelected(target)

		a.mu.Lock()
		detected := a.lastDetected
		a.mu.Unlock()
		if language.Supported(detected) && language.Name(detected) != target {
			a.targetSelect.SetSelected(language.Name(detected))
		}
		return
	}

	a.sourceSelect.SetSelected(target)
	a.targetSelect.SetSelected(source)
}

// onClearCache unloads the backend session and clears cached results.
// Safe to click any number of times.
func (a *Application) onClearCache() {
	a.updateStatus("Clearing caches...")

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		a.service.ClearCache()

		fyne.Do(func() {
			a.updateStatus("Caches cleared - the model reloads on the next translation")
		})
	}()
}

// showTranslationError displays a translation failure, with a friendlier
// message when the backend itself is down.
func (a *Application) showTranslationError(err error) {
	if translate.IsModelUnavailable(err) {
		a.updateStatus("Translation backend unavailable")
		dialog.ShowError(fmt.Errorf("the %s backend is not reachable: %w\n\nCheck that the inference server is running", a.config.Backend, err), a.window)
		return
	}
	a.updateStatus("Translation failed")
	dialog.ShowError(err, a.window)
}

// updateStatus sets the status label text
func (a *Application) updateStatus(status string) {
	a.statusLabel.SetText(status)
}

// selectedSource maps the source selector value to a language tag
func (a *Application) selectedSource() (language.Tag, error) {
	if a.sourceSelect.Selected == autoOption {
		return language.Auto, nil
	}
	return language.FromName(a.sourceSelect.Selected)
}

// sourceOption normalizes a configured source name to a selector option
func (a *Application) sourceOption(name string) string {
	if strings.EqualFold(name, autoOption) {
		return autoOption
	}
	if tag, err := language.FromName(name); err == nil {
		return language.Name(tag)
	}
	return autoOption
}

// targetOption normalizes a configured target name to a selector option
func (a *Application) targetOption(name string) string {
	if _, err := language.FromName(name); err == nil {
		return name
	}
	return "English"
}

// formatAnalysis renders the word-level breakdown for the analysis pane
func formatAnalysis(analysis detect.Analysis) string {
	if analysis.Empty() {
		return "No language-bearing words detected"
	}

	var b strings.Builder
	for i, tag := range analysis.Languages {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(language.Name(tag))
	}
	b.WriteString("\n")

	for _, w := range analysis.Words {
		if w.Punct {
			continue
		}
		fmt.Fprintf(&b, "%-20s %s\n", w.Word, language.Name(w.Tag))
	}

	if analysis.LowConfidence {
		b.WriteString("\nDetection confidence is low for this input")
	}

	return strings.TrimRight(b.String(), "\n")
}
