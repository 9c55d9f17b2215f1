package dto

// DiscordUser là thông tin người dùng Discord từ backend auth
type DiscordUser struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar"`
	Email         string `json:"email,omitempty"`
}

// DiscordRole là thông tin role Discord từ backend
type DiscordRole struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color int    `json:"color,omitempty"`
}

// DiscordGuild là thông tin guild của người dùng từ backend auth
type DiscordGuild struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// BulkLookupResult là mapping ID → tên hiển thị từ các endpoint bulk
// Key là chuỗi thập phân của ID (user hoặc role)
type BulkLookupResult map[string]string
