package registry

// Default returns the built-in registry. Clients without a well-known
// location have no default path and must be configured by the user.
func Default() Registry {
	return New(
		Client{
			ID:          "amp",
			DisplayName: "Amp",
			Icon:        IconCode,
			DocURL:      "https://ampcode.com/manual#mcp",
			DefaultPath: "~/.config/amp/settings.json",
		},
		Client{
			ID:          "claude-code",
			DisplayName: "Claude Code",
			Icon:        IconCode,
			DocURL:      "https://docs.anthropic.com/en/docs/claude-code/mcp",
			DefaultPath: "~/.claude.json",
		},
		Client{
			ID:          "claude-desktop-app",
			DisplayName: "Claude Desktop app",
			Icon:        IconCode,
			DocURL:      "https://modelcontextprotocol.io/quickstart/user",
			DefaultPath: "~/Library/Application Support/Claude/claude_desktop_config.json",
		},
		Client{
			ID:          "cline",
			DisplayName: "Cline",
			Icon:        IconCode,
			DocURL:      "https://docs.cline.bot/mcp/configuring-mcp-servers",
			DefaultPath: "~/Library/Application Support/Code/User/globalStorage/saoudrizwan.claude-dev/settings/cline_mcp_settings.json",
		},
		Client{
			ID:          "codex",
			DisplayName: "Codex",
			Icon:        IconCode,
			DocURL:      "https://github.com/openai/codex/blob/main/docs/config.md",
			DefaultPath: "~/.codex/config.toml",
		},
		Client{
			ID:          "copilot-cli",
			DisplayName: "Copilot CLI",
			Icon:        IconTerminal,
			DefaultPath: "~/.copilot/mcp-config.json",
		},
		Client{
			ID:          "copilot-vscode",
			DisplayName: "Copilot / VS Code",
			Icon:        IconCode,
			DocURL:      "https://code.visualstudio.com/docs/copilot/chat/mcp-servers",
			DefaultPath: "~/Library/Application Support/Code/User/mcp.json",
		},
		Client{
			ID:          "cursor",
			DisplayName: "Cursor",
			Icon:        IconCode,
			DocURL:      "https://docs.cursor.com/context/model-context-protocol",
			DefaultPath: "~/.cursor/mcp.json",
		},
		Client{
			ID:          "factory-cli",
			DisplayName: "Factory CLI",
			Icon:        IconTerminal,
			DefaultPath: "~/.factory/mcp.json",
		},
		Client{
			ID:          "gemini-cli",
			DisplayName: "Gemini CLI",
			Icon:        IconTerminal,
			DefaultPath: "~/.gemini/settings.json",
		},
		Client{
			// Each JetBrains IDE keeps its own settings directory.
			ID:          "jetbrains",
			DisplayName: "JetBrains AI Assistant & Junie",
			Icon:        IconCode,
		},
		Client{
			ID:          "kiro",
			DisplayName: "Kiro",
			Icon:        IconCode,
			DefaultPath: "~/.kiro/settings/mcp.json",
		},
		Client{
			ID:          "qoder",
			DisplayName: "Qoder",
			Icon:        IconCode,
		},
		Client{
			ID:          "visual-studio",
			DisplayName: "Visual Studio",
			Icon:        IconCode,
			DefaultPath: "~/.mcp.json",
		},
		Client{
			// Warp stores MCP servers in its own database.
			ID:          "warp",
			DisplayName: "Warp",
			Icon:        IconTerminal,
		},
		Client{
			ID:          "windsurf",
			DisplayName: "Windsurf",
			Icon:        IconCode,
			DocURL:      "https://docs.windsurf.com/windsurf/cascade/mcp",
			DefaultPath: "~/.codeium/windsurf/mcp_config.json",
		},
	)
}
