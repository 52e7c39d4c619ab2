package locales

var english = Messages{
	"app.title":                  "openGemini Studio",
	"common.save":                "Save",
	"common.cancel":              "Cancel",
	"common.reset":               "Reset",
	"connection.new":             "New Connection",
	"connection.edit":            "Edit Connection",
	"connection.delete":          "Delete Connection",
	"connection.name":            "Name",
	"connection.address":         "Address",
	"connection.enableAuth":      "Enable Authentication",
	"connection.username":        "Username",
	"connection.password":        "Password",
	"connection.ssh":             "SSH Tunnel",
	"query.execute":              "Execute",
	"query.executionTime":        "Execution time",
	"query.noContent":            "The statement returned no rows",
	"history.title":              "Query History",
	"history.empty":              "No queries yet",
	"settings.title":             "Settings",
	"settings.language":          "Language",
	"settings.themeMode":         "Theme",
	"settings.themeMode.light":   "Light",
	"settings.themeMode.dark":    "Dark",
	"settings.themeMode.system":  "Follow system",
	"settings.customFont":        "Custom font",
	"settings.maxHistoryCount":   "Maximum history entries",
	"settings.dataDirectory":     "Data directory",
	"settings.debug":             "Debug mode",
	"settings.resetConfirmation": "Restore all settings to their defaults?",
}
