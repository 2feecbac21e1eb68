package server

// Plugin is one configuration stage: a single-purpose install step that
// registers one capability into the shared application context.
type Plugin struct {
	Name    string
	Install func(*App) error
}

// PluginRecord 记录某个阶段的安装结果，供 /-/plugins 诊断端展示。
type PluginRecord struct {
	Name     string
	Position int
	Status   string
}

const recordStatusInstalled = "installed"
