package service

// Keys of the persisted session state. They are the only keys written by
// the application.
const (
	KeyUser              = "choukette_user"
	KeyBakeryData        = "choukette_bakery_data"
	KeyBlogPosts         = "choukette_blog_posts"
	KeyProfessionalStats = "choukette_professional_stats"
)

// SessionKeys are cleared together on logout. Blog posts survive.
var SessionKeys = []string{KeyUser, KeyBakeryData, KeyProfessionalStats}
