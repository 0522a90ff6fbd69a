package domain

// CatalogOption is a label/value pair offered by the ticket form.
type CatalogOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Categories lists the selectable ticket categories.
func Categories() []CatalogOption {
	return []CatalogOption{
		{Label: "Software Issues", Value: "software_issues"},
		{Label: "Hardware Issues", Value: "hardware_issues"},
		{Label: "Network Issues", Value: "network_issues"},
		{Label: "Application Crashes", Value: "application_crashes"},
		{Label: "Others", Value: "others"},
	}
}

// SubcategoriesFor returns the subcategories offered for a category.
// Unknown categories fall back to a single general option.
func SubcategoriesFor(category string) []CatalogOption {
	switch category {
	case "software_issues":
		return []CatalogOption{
			{Label: "Installation", Value: "installation"},
			{Label: "Update", Value: "update"},
			{Label: "Bug", Value: "bug"},
			{Label: "License", Value: "license"},
		}
	case "hardware_issues":
		return []CatalogOption{
			{Label: "Laptop", Value: "laptop"},
			{Label: "Desktop", Value: "desktop"},
			{Label: "Printer", Value: "printer"},
			{Label: "Peripheral", Value: "peripheral"},
		}
	case "network_issues":
		return []CatalogOption{
			{Label: "Connectivity", Value: "connectivity"},
			{Label: "VPN", Value: "vpn"},
			{Label: "Server", Value: "server"},
			{Label: "Firewall", Value: "firewall"},
		}
	case "application_crashes":
		return []CatalogOption{
			{Label: "Login", Value: "login"},
			{Label: "Performance", Value: "performance"},
			{Label: "Data Loss", Value: "data_loss"},
			{Label: "Compatibility", Value: "compatibility"},
		}
	default:
		return []CatalogOption{{Label: "General", Value: "general"}}
	}
}

// Departments lists the selectable departments.
func Departments() []CatalogOption {
	return []CatalogOption{
		{Label: "IT", Value: "it"},
		{Label: "HR", Value: "hr"},
		{Label: "Finance", Value: "finance"},
		{Label: "Operations", Value: "operations"},
		{Label: "Sales", Value: "sales"},
		{Label: "Marketing", Value: "marketing"},
	}
}

// ValidCategory reports whether value is a known category.
func ValidCategory(value string) bool {
	return containsOption(Categories(), value)
}

// ValidDepartment reports whether value is a known department.
func ValidDepartment(value string) bool {
	return containsOption(Departments(), value)
}

func containsOption(options []CatalogOption, value string) bool {
	for _, opt := range options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
