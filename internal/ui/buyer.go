package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agrocycle/agrocycle/internal/assistant"
	"github.com/agrocycle/agrocycle/internal/logger"
	"github.com/agrocycle/agrocycle/internal/model"
	"github.com/agrocycle/agrocycle/internal/service"
)

type buyerTab int

const (
	buyerTabMarket buyerTab = iota
	buyerTabHistory
	buyerTabChat
)

// buyerModel is the industrial buyer dashboard: the live market,
// the session's purchase history, and the assistant.
type buyerModel struct {
	ctx    context.Context
	user   model.User
	market *service.Market
	logger *logger.Logger

	tab       buyerTab
	listings  []model.BiomassListing
	purchased []model.BiomassListing
	cursor    int
	chat      *chatModel

	// checkout holds the pending order while the confirmation
	// modal is open.
	checkout *service.CheckoutSummary
	errText  string
}

func newBuyerDashboard(ctx context.Context, user model.User, market *service.Market, completer assistant.Completer, log *logger.Logger) *buyerModel {
	m := &buyerModel{
		ctx:    ctx,
		user:   user,
		market: market,
		logger: log,
		chat:   newChatModel(ctx, completer, model.RoleBuyer),
	}
	m.reload()
	return m
}

func (m *buyerModel) reload() {
	listings, err := m.market.AvailableListings(m.ctx)
	if err != nil {
		m.errText = err.Error()
		return
	}

	m.listings = listings
	m.errText = ""
	if m.cursor >= len(m.listings) {
		m.cursor = 0
	}
}

func (m *buyerModel) update(a *App, msg tea.Msg) (tea.Model, tea.Cmd) {
	// Assistant replies and ticks must reach the chat even when
	// another panel or the checkout modal is in front.
	switch msg.(type) {
	case chatReplyMsg, spinner.TickMsg:
		return a, m.chat.update(msg)
	}

	if m.checkout != nil {
		return a, m.updateCheckout(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return a, func() tea.Msg { return logoutMsg{} }
		case "tab":
			m.tab = (m.tab + 1) % 3
			return a, nil
		case "shift+tab":
			m.tab = (m.tab + 2) % 3
			return a, nil
		}

		if m.tab == buyerTabMarket {
			switch key.String() {
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}
				return a, nil
			case "down", "j":
				if m.cursor < len(m.listings)-1 {
					m.cursor++
				}
				return a, nil
			case "enter":
				if len(m.listings) > 0 {
					summary := m.market.Checkout(m.listings[m.cursor])
					m.checkout = &summary
				}
				return a, nil
			}
		}
	}

	if m.tab == buyerTabChat {
		return a, m.chat.update(msg)
	}

	return a, nil
}

func (m *buyerModel) updateCheckout(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "esc", "n":
		m.checkout = nil
		m.errText = ""
	case "enter", "y":
		sold, err := m.market.ConfirmPurchase(m.ctx, m.checkout.Listing.ID)
		if err != nil {
			m.errText = marketErrorText(err)
			m.checkout = nil
			m.reload()
			return nil
		}

		m.purchased = append(m.purchased, sold)
		m.checkout = nil
		m.reload()
		m.tab = buyerTabHistory
	}
	return nil
}

func (m *buyerModel) view() string {
	if m.checkout != nil {
		return panelStyle.Render(m.checkoutView())
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Procurement Desk") + "  " + subtleStyle.Render(m.locationLabel()) + "\n")
	b.WriteString(tabs([]string{"Market", "Order History", "Assistant"}, int(m.tab)) + "\n\n")

	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText) + "\n\n")
	}

	switch m.tab {
	case buyerTabMarket:
		b.WriteString(m.marketView())
	case buyerTabHistory:
		b.WriteString(m.historyView())
	case buyerTabChat:
		b.WriteString(m.chat.view())
	}

	b.WriteString("\n" + subtleStyle.Render(m.helpLine()))

	return panelStyle.Render(b.String())
}

func (m *buyerModel) locationLabel() string {
	if m.user.Location != "" {
		return m.user.Location
	}
	return "Regional Hub"
}

func (m *buyerModel) helpLine() string {
	if m.tab == buyerTabMarket {
		return "↑/↓ browse · enter secure stock · tab switch panel · esc logout"
	}
	return "tab switch panel · esc logout"
}

func (m *buyerModel) marketView() string {
	if len(m.listings) == 0 {
		return subtleStyle.Render("No stock on the market right now.")
	}

	var b strings.Builder
	for i, l := range m.listings {
		line := fmt.Sprintf("%s · %.1f MT · %s/MT · %s · %s", l.Type, l.Quantity, rupees(l.Price), l.Location, l.Date)
		if i == m.cursor {
			line = selectedStyle.Render("› " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m *buyerModel) historyView() string {
	if len(m.purchased) == 0 {
		return subtleStyle.Render("No orders placed this session.")
	}

	var b strings.Builder
	for _, l := range m.purchased {
		b.WriteString(fmt.Sprintf("%s · %.1f MT · %s · secured\n", l.Type, l.Quantity, rupees(l.ContractValue())))
	}
	return b.String()
}

func (m *buyerModel) checkoutView() string {
	var b strings.Builder
	s := m.checkout

	b.WriteString(titleStyle.Render("Secure This Stock?") + "\n\n")
	b.WriteString(fmt.Sprintf("%s · %.1f MT from %s\n\n", s.Listing.Type, s.Listing.Quantity, s.Listing.Location))
	b.WriteString(labelStyle.Render("Material Cost") + "  " + rupees(s.MaterialCost) + "\n")
	b.WriteString(labelStyle.Render("Logistics Fee") + "  " + rupees(s.LogisticsFee) + "\n")
	b.WriteString(labelStyle.Render("Total Payable") + "  " + titleStyle.Render(rupees(s.Total)) + "\n")
	b.WriteString("\n" + subtleStyle.Render("enter confirm · esc cancel"))

	return b.String()
}
