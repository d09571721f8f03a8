package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"somabuddy/internal/i18n"
	"somabuddy/internal/nav"
)

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func TestHintAppearsAfterAnimation(t *testing.T) {
	w := New(i18n.English)

	view := w.View(80, 24)
	if strings.Contains(view, "press any key") {
		t.Error("hint should not be visible at start")
	}

	sendTicks(w, 16)
	view = w.View(80, 24)
	if !strings.Contains(view, "press any key") {
		t.Error("hint should be visible after the animation")
	}
}

func TestKeypressDuringAnimationIgnored(t *testing.T) {
	w := New(i18n.English)
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd != nil {
		t.Fatal("keypress during animation should do nothing")
	}
}

func TestKeypressAfterAnimationStartsFlow(t *testing.T) {
	w := New(i18n.English)
	sendTicks(w, 16)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected a command after the animation")
	}
	if _, ok := cmd().(nav.GetStartedMsg); !ok {
		t.Fatalf("expected GetStartedMsg, got %T", cmd())
	}

	// Second keypress must not emit again.
	_, cmd = w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
}

func TestLanguageToggleKey(t *testing.T) {
	w := New(i18n.English)

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'l'})
	if cmd == nil {
		t.Fatal("expected a command from the language key")
	}
	msg, ok := cmd().(nav.LanguageToggledMsg)
	if !ok {
		t.Fatalf("expected LanguageToggledMsg, got %T", cmd())
	}
	if msg.Lang != i18n.Kiswahili {
		t.Errorf("toggle from en should request sw, got %v", msg.Lang)
	}
}

func TestRendersKiswahiliCopy(t *testing.T) {
	w := New(i18n.Kiswahili)
	sendTicks(w, 16)
	view := w.View(80, 24)
	if !strings.Contains(view, "Karibu SomaBuddy") {
		t.Error("Kiswahili welcome copy missing")
	}
}
