// Package seed holds the static data the console starts from: the three
// default menus, the initial feature flags and the module catalog.
package seed

import (
	"context"
	"fmt"

	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
)

var builtin = map[domain.FeatureKey]domain.MenuItem{
	domain.FeatureTasks:          {ID: "tasks", Label: "Tasks", Icon: domain.IconCheckSquare, Path: "/tasks"},
	domain.FeatureIncidents:      {ID: "incidents", Label: "Incidents", Icon: domain.IconAlertCircle, Path: "/incidents"},
	domain.FeatureHistory:        {ID: "history", Label: "History", Icon: domain.IconHistory, Path: "/history"},
	domain.FeatureExams:          {ID: "exams", Label: "Exams", Icon: domain.IconGraduationCap, Path: "/exams"},
	domain.FeatureMessages:       {ID: "messages", Label: "Messages", Icon: domain.IconMail, Path: "/messages"},
	domain.FeaturePublications:   {ID: "publications", Label: "Publications", Icon: domain.IconFileText, Path: "/publications"},
	domain.FeatureAdministration: {ID: "administration", Label: "Administration", Icon: domain.IconSettings, Path: "/administration"},
}

func items(keys ...domain.FeatureKey) []domain.MenuItem {
	out := make([]domain.MenuItem, 0, len(keys))
	for i, k := range keys {
		item := builtin[k]
		item.Visible = true
		item.Order = i + 1
		out = append(out, item)
	}
	return out
}

// StarterItems is the minimal item set of a newly created menu.
func StarterItems() []domain.MenuItem {
	return items(domain.FeatureTasks, domain.FeatureIncidents)
}

// DefaultMenus returns the per-role default configurations.
func DefaultMenus() []domain.MenuConfiguration {
	return []domain.MenuConfiguration{
		{
			ID:        "admin-menu",
			Name:      "Admin Menu",
			Role:      domain.RoleAdmin,
			IsDefault: true,
			Items:     items(domain.FeatureKeys...),
		},
		{
			ID:        "manager-menu",
			Name:      "Manager Menu",
			Role:      domain.RoleManager,
			IsDefault: true,
			Items: items(
				domain.FeatureTasks,
				domain.FeatureIncidents,
				domain.FeatureHistory,
				domain.FeatureExams,
				domain.FeatureMessages,
				domain.FeaturePublications,
			),
		},
		{
			ID:        "employee-menu",
			Name:      "Employee Menu",
			Role:      domain.RoleEmployee,
			IsDefault: true,
			Items: items(
				domain.FeatureTasks,
				domain.FeatureIncidents,
				domain.FeatureExams,
				domain.FeatureMessages,
				domain.FeaturePublications,
			),
		},
	}
}

// DefaultFlags enables every built-in module.
func DefaultFlags() domain.FeatureFlags {
	return domain.AllEnabled()
}

// Catalog returns the installable add-on modules, all inactive.
func Catalog() []domain.AvailableModule {
	return []domain.AvailableModule{
		{ID: "inventory", Name: "Inventory", Description: "Stock levels, movements and reorder alerts", Icon: domain.IconPackage, Category: domain.CategoryOperations, Path: "/inventory", Features: []string{"Stock control", "Low stock alerts", "Movements log", "Barcode lookup"}},
		{ID: "maintenance", Name: "Maintenance", Description: "Preventive and corrective maintenance plans", Icon: domain.IconWrench, Category: domain.CategoryOperations, Path: "/maintenance", Features: []string{"Preventive plans", "Work orders", "Equipment registry"}},
		{ID: "quality", Name: "Quality Checks", Description: "Inspection checklists with pass/fail tracking", Icon: domain.IconCheckCircle, Category: domain.CategoryOperations, Path: "/quality", Features: []string{"Checklists", "Non-conformities", "Photo evidence"}},
		{ID: "vacations", Name: "Vacations", Description: "Leave requests and approvals", Icon: domain.IconPalmtree, Category: domain.CategoryHR, Path: "/vacations", Features: []string{"Leave requests", "Approval flow", "Team calendar"}},
		{ID: "expenses", Name: "Expenses", Description: "Expense claims and reimbursements", Icon: domain.IconWallet, Category: domain.CategoryHR, Path: "/expenses", Features: []string{"Receipts upload", "Approval flow", "Monthly export"}},
		{ID: "dashboard", Name: "Dashboard", Description: "Operational overview with live widgets", Icon: domain.IconLayoutDashboard, Category: domain.CategoryAnalytics, Path: "/dashboard", IsPremium: true, Features: []string{"Custom widgets", "Live counters", "Shareable views"}},
		{ID: "reports", Name: "Reports", Description: "Scheduled and ad-hoc reporting", Icon: domain.IconFileBarChart, Category: domain.CategoryAnalytics, Path: "/reports", IsPremium: true, Features: []string{"Report builder", "Scheduled delivery", "PDF and CSV export", "Saved filters"}},
		{ID: "announcements", Name: "Announcements", Description: "Company-wide announcements board", Icon: domain.IconMegaphone, Category: domain.CategoryCommunication, Path: "/announcements", Features: []string{"Pinned posts", "Audience targeting", "Read receipts"}},
		{ID: "teams", Name: "Teams", Description: "Team directory and shift groups", Icon: domain.IconUsersGroup, Category: domain.CategoryHR, Path: "/teams", Features: []string{"Directory", "Shift groups", "Team leads"}},
		{ID: "kpis", Name: "KPIs", Description: "Goal tracking and performance indicators", Icon: domain.IconTrendingUp, Category: domain.CategoryAnalytics, Path: "/kpis", IsPremium: true, Features: []string{"Targets", "Trend charts", "Alerts"}},
		{ID: "surveys", Name: "Surveys", Description: "Internal surveys and polls", Icon: domain.IconClipboardList, Category: domain.CategoryCommunication, Path: "/surveys", Features: []string{"Anonymous answers", "Question bank", "Results export"}},
		{ID: "invoices", Name: "Invoices", Description: "Supplier invoices and payment status", Icon: domain.IconReceipt, Category: domain.CategoryOther, Path: "/invoices", IsPremium: true, Features: []string{"Invoice inbox", "Payment status", "Supplier records"}},
		{ID: "attendance", Name: "Attendance", Description: "Clock-in, clock-out and timesheets", Icon: domain.IconCalendarCheck, Category: domain.CategoryHR, Path: "/attendance", Features: []string{"Clock-in", "Timesheets", "Overtime"}},
		{ID: "documents", Name: "Documents", Description: "Shared document library", Icon: domain.IconFolderOpen, Category: domain.CategoryProductivity, Path: "/documents", Features: []string{"Folders", "Versioning", "Access control"}},
		{ID: "calendar", Name: "Calendar", Description: "Shared calendar and bookings", Icon: domain.IconCalendar, Category: domain.CategoryProductivity, Path: "/calendar", Features: []string{"Events", "Room booking", "Reminders"}},
	}
}

// ValidateCatalog rejects catalog entries the registry could not serve.
func ValidateCatalog(catalog []domain.AvailableModule) error {
	seen := make(map[string]struct{}, len(catalog))
	for _, m := range catalog {
		switch {
		case m.ID == "":
			return fmt.Errorf("catalog: module without id")
		case !m.Icon.Valid():
			return fmt.Errorf("catalog: module %q: unknown icon %q", m.ID, m.Icon)
		case !m.Category.Valid():
			return fmt.Errorf("catalog: module %q: unknown category %q", m.ID, m.Category)
		case m.Path == "":
			return fmt.Errorf("catalog: module %q: empty path", m.ID)
		}
		if _, err := domain.ParseFeatureKey(m.ID); err == nil {
			return fmt.Errorf("catalog: module %q shadows a built-in feature", m.ID)
		}
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("catalog: duplicate module %q", m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return nil
}

// Load validates the catalog and installs the default menus and the
// catalog into empty repositories.
func Load(ctx context.Context, menus ports.MenuRepository, modules ports.ModuleRepository) error {
	catalog := Catalog()
	if err := ValidateCatalog(catalog); err != nil {
		return err
	}

	for _, cfg := range DefaultMenus() {
		cfg := cfg
		if err := menus.Save(ctx, &cfg); err != nil {
			return fmt.Errorf("seed menu %s: %w", cfg.ID, err)
		}
	}
	for _, m := range catalog {
		m := m
		if err := modules.Save(ctx, &m); err != nil {
			return fmt.Errorf("seed module %s: %w", m.ID, err)
		}
	}
	return nil
}
