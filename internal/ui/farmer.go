package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agrocycle/agrocycle/internal/assistant"
	"github.com/agrocycle/agrocycle/internal/logger"
	"github.com/agrocycle/agrocycle/internal/model"
	"github.com/agrocycle/agrocycle/internal/service"
)

type farmerTab int

const (
	farmerTabBoard farmerTab = iota
	farmerTabRegistry
	farmerTabChat
)

// farmerModel is the cluster-manager dashboard: market board, farm
// registry, and the assistant, with free navigation between them.
type farmerModel struct {
	ctx    context.Context
	user   model.User
	market *service.Market
	logger *logger.Logger

	tab      farmerTab
	listings []model.BiomassListing
	farmers  []model.FarmerProfile
	chat     *chatModel

	listingForm *listingFormModel
	farmerForm  *farmerFormModel
	errText     string
}

func newFarmerDashboard(ctx context.Context, user model.User, market *service.Market, completer assistant.Completer, log *logger.Logger) *farmerModel {
	m := &farmerModel{
		ctx:    ctx,
		user:   user,
		market: market,
		logger: log,
		chat:   newChatModel(ctx, completer, model.RoleFarmer),
	}
	m.reload()
	return m
}

// reload re-reads both collections so the view always matches the store.
func (m *farmerModel) reload() {
	listings, err := m.market.Listings(m.ctx)
	if err != nil {
		m.errText = err.Error()
		return
	}
	farmers, err := m.market.Farmers(m.ctx)
	if err != nil {
		m.errText = err.Error()
		return
	}

	m.listings = listings
	m.farmers = farmers
	m.errText = ""
}

func (m *farmerModel) update(a *App, msg tea.Msg) (tea.Model, tea.Cmd) {
	// Assistant replies and ticks must reach the chat even when
	// another panel or form is in front.
	switch msg.(type) {
	case chatReplyMsg, spinner.TickMsg:
		return a, m.chat.update(msg)
	}

	if m.listingForm != nil {
		return a, m.listingForm.update(m, msg)
	}
	if m.farmerForm != nil {
		return a, m.farmerForm.update(m, msg)
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
		case "n":
			if m.tab == farmerTabBoard {
				m.listingForm = newListingForm(m.farmers)
				return a, textinput.Blink
			}
		case "r":
			if m.tab == farmerTabRegistry {
				m.farmerForm = newFarmerForm()
				return a, textinput.Blink
			}
		}
	}

	if m.tab == farmerTabChat {
		return a, m.chat.update(msg)
	}

	return a, nil
}

func (m *farmerModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("AgroCycle Hub") + "  " + subtleStyle.Render(m.clusterLabel()) + "\n")
	b.WriteString(tabs([]string{"Market Board", "Farm Registry", "AI Hub"}, int(m.tab)) + "\n\n")

	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText) + "\n\n")
	}

	switch m.tab {
	case farmerTabBoard:
		b.WriteString(m.boardView())
	case farmerTabRegistry:
		b.WriteString(m.registryView())
	case farmerTabChat:
		b.WriteString(m.chat.view())
	}

	if m.listingForm != nil {
		return panelStyle.Render(m.listingForm.view())
	}
	if m.farmerForm != nil {
		return panelStyle.Render(m.farmerForm.view())
	}

	b.WriteString("\n" + subtleStyle.Render(m.helpLine()))

	return panelStyle.Render(b.String())
}

func (m *farmerModel) clusterLabel() string {
	if m.user.ClusterName != "" {
		return m.user.ClusterName
	}
	return "Active Cluster"
}

func (m *farmerModel) helpLine() string {
	switch m.tab {
	case farmerTabBoard:
		return "n list material · tab switch panel · esc logout"
	case farmerTabRegistry:
		return "r register farmer · tab switch panel · esc logout"
	}
	return "tab switch panel · esc logout"
}

func (m *farmerModel) boardView() string {
	if len(m.listings) == 0 {
		return subtleStyle.Render("No Active Stock")
	}

	var b strings.Builder
	for _, l := range m.listings {
		line := fmt.Sprintf("%s · %s · %.1f MT · %s", l.Type, l.FarmerName, l.Quantity, rupees(l.ContractValue()))
		if l.Status == model.ListingSold {
			line = soldStyle.Render(line + " · sold")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m *farmerModel) registryView() string {
	if len(m.farmers) == 0 {
		return subtleStyle.Render("Registry is empty")
	}

	var b strings.Builder
	for _, f := range m.farmers {
		b.WriteString(fmt.Sprintf("%s · %s\n", f.Name, subtleStyle.Render(f.Location)))
	}
	return b.String()
}

// listingFormModel collects a new market listing. The source farmer
// and material type are picked from fixed sets, not typed.
type listingFormModel struct {
	farmers   []model.FarmerProfile
	farmerIdx int
	types     []model.MaterialType
	typeIdx   int
	quantity  textinput.Model
	price     textinput.Model
	focus     int
	errText   string
}

func newListingForm(farmers []model.FarmerProfile) *listingFormModel {
	quantity := textinput.New()
	quantity.Placeholder = "0.0"
	quantity.CharLimit = 12

	price := textinput.New()
	price.Placeholder = "₹"
	price.CharLimit = 12

	return &listingFormModel{
		farmers:  farmers,
		types:    model.MaterialTypes(),
		quantity: quantity,
		price:    price,
	}
}

func (f *listingFormModel) update(m *farmerModel, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInputs(msg)
	}

	switch key.String() {
	case "esc":
		m.listingForm = nil
		return nil
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return nil
	case "left", "right":
		f.cycle(key.String() == "right")
		return nil
	case "enter":
		if f.focus < 3 {
			f.setFocus(f.focus + 1)
			return nil
		}
		f.submit(m)
		return nil
	}

	return f.updateInputs(msg)
}

func (f *listingFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case 2:
		f.quantity, cmd = f.quantity.Update(msg)
	case 3:
		f.price, cmd = f.price.Update(msg)
	}
	return cmd
}

func (f *listingFormModel) setFocus(i int) {
	if i < 0 {
		i = 3
	}
	if i > 3 {
		i = 0
	}
	f.focus = i

	f.quantity.Blur()
	f.price.Blur()
	switch i {
	case 2:
		f.quantity.Focus()
	case 3:
		f.price.Focus()
	}
}

func (f *listingFormModel) cycle(forward bool) {
	step := 1
	if !forward {
		step = -1
	}
	switch f.focus {
	case 0:
		if n := len(f.farmers); n > 0 {
			f.farmerIdx = (f.farmerIdx + step + n) % n
		}
	case 1:
		n := len(f.types)
		f.typeIdx = (f.typeIdx + step + n) % n
	}
}

func (f *listingFormModel) submit(m *farmerModel) {
	f.errText = ""

	if len(f.farmers) == 0 {
		f.errText = "Register a farmer before posting stock."
		return
	}

	quantity, err := strconv.ParseFloat(strings.TrimSpace(f.quantity.Value()), 64)
	if err != nil {
		f.errText = "Volume must be a number."
		return
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(f.price.Value()), 64)
	if err != nil {
		f.errText = "Base rate must be a number."
		return
	}

	_, err = m.market.CreateListing(m.ctx, service.CreateListingParams{
		Owner:      m.user,
		FarmerName: f.farmers[f.farmerIdx].Name,
		Type:       f.types[f.typeIdx],
		Quantity:   quantity,
		Price:      price,
	})
	if err != nil {
		f.errText = marketErrorText(err)
		return
	}

	m.reload()
	m.listingForm = nil
}

func (f *listingFormModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Market Listing") + "\n\n")

	farmerName := "(none registered)"
	if len(f.farmers) > 0 {
		farmerName = f.farmers[f.farmerIdx].Name
	}
	b.WriteString(formPicker("Source Farmer", farmerName, f.focus == 0))
	b.WriteString(formPicker("Material Type", string(f.types[f.typeIdx]), f.focus == 1))
	b.WriteString(labelStyle.Render("Volume (MT)") + "\n" + f.quantity.View() + "\n")
	b.WriteString(labelStyle.Render("Base Rate (₹)") + "\n" + f.price.View() + "\n")

	if f.errText != "" {
		b.WriteString("\n" + errorStyle.Render(f.errText) + "\n")
	}

	b.WriteString("\n" + subtleStyle.Render("←/→ pick · tab next · enter post · esc cancel"))

	return b.String()
}

func formPicker(label, value string, focused bool) string {
	if focused {
		value = selectedStyle.Render("‹ " + value + " ›")
	}
	return labelStyle.Render(label) + "\n" + value + "\n"
}

// farmerFormModel collects a new farm registry entry.
type farmerFormModel struct {
	name     textinput.Model
	location textinput.Model
	focus    int
	errText  string
}

func newFarmerForm() *farmerFormModel {
	name := textinput.New()
	name.Placeholder = "Ramesh Chandra"
	name.CharLimit = 120
	name.Focus()

	location := textinput.New()
	location.Placeholder = "Village North, Plot 42"
	location.CharLimit = 120

	return &farmerFormModel{name: name, location: location}
}

func (f *farmerFormModel) update(m *farmerModel, msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.farmerForm = nil
			return nil
		case "tab", "down", "shift+tab", "up":
			f.toggleFocus()
			return nil
		case "enter":
			if f.focus == 0 {
				f.toggleFocus()
				return nil
			}
			f.submit(m)
			return nil
		}
	}

	var cmd tea.Cmd
	if f.focus == 0 {
		f.name, cmd = f.name.Update(msg)
	} else {
		f.location, cmd = f.location.Update(msg)
	}
	return cmd
}

func (f *farmerFormModel) toggleFocus() {
	if f.focus == 0 {
		f.focus = 1
		f.name.Blur()
		f.location.Focus()
	} else {
		f.focus = 0
		f.location.Blur()
		f.name.Focus()
	}
}

func (f *farmerFormModel) submit(m *farmerModel) {
	f.errText = ""

	_, err := m.market.RegisterFarmer(m.ctx, service.RegisterFarmerParams{
		Owner:    m.user,
		Name:     strings.TrimSpace(f.name.Value()),
		Location: strings.TrimSpace(f.location.Value()),
	})
	if err != nil {
		f.errText = marketErrorText(err)
		return
	}

	m.reload()
	m.farmerForm = nil
}

func (f *farmerFormModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Register Farmer") + "\n\n")
	b.WriteString(labelStyle.Render("Full Legal Name") + "\n" + f.name.View() + "\n")
	b.WriteString(labelStyle.Render("Farm Location Detail") + "\n" + f.location.View() + "\n")

	if f.errText != "" {
		b.WriteString("\n" + errorStyle.Render(f.errText) + "\n")
	}

	b.WriteString("\n" + subtleStyle.Render("tab next · enter register · esc cancel"))

	return b.String()
}
