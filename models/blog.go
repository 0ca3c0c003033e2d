package models

// BlogPost is one read-only blog record. Date is kept as the ISO string the
// payload carries; it is never parsed.
type BlogPost struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Image    string   `json:"image"`
	Tags     []string `json:"tags"`
}

// SeedBlogPosts returns the post collection the store starts with.
func SeedBlogPosts() []BlogPost {
	return []BlogPost{
		{
			ID:       "1",
			Title:    "Going all-in with millennial design",
			Excerpt:  "Discover how millennial design principles are transforming modern furniture. Learn about the key elements that make furniture appealing to younger generations.",
			Content:  "Full blog post content about millennial design trends, including sustainable materials, minimalist aesthetics, and multifunctional pieces...",
			Author:   "Sarah Johnson",
			Date:     "2022-10-14",
			Category: "Design",
			Image:    "/images/blog1.jpg",
			Tags:     []string{"design", "millennial", "furniture"},
		},
		{
			ID:       "2",
			Title:    "Exploring new ways of decorating",
			Excerpt:  "Transform your living space with innovative decorating techniques. From color psychology to space optimization, discover fresh ideas for your home.",
			Content:  "Complete guide to modern decorating techniques, including color schemes, lighting, and furniture arrangement...",
			Author:   "Michael Chen",
			Date:     "2022-10-10",
			Category: "Interior",
			Image:    "/images/blog2.jpg",
			Tags:     []string{"decorating", "interior", "design"},
		},
		{
			ID:       "3",
			Title:    "Handmade pieces that took time to make",
			Excerpt:  "Celebrate the art of handcrafted furniture. Learn about traditional techniques and the value of artisan-made pieces in our modern world.",
			Content:  "In-depth look at traditional furniture making techniques and the stories behind handcrafted pieces...",
			Author:   "Emily Rodriguez",
			Date:     "2022-10-05",
			Category: "Handmade",
			Image:    "/images/blog3.jpg",
			Tags:     []string{"handmade", "crafts", "furniture"},
		},
		{
			ID:       "4",
			Title:    "Modern home in Milan",
			Excerpt:  "Take a tour of a stunning modern home in Milan that perfectly balances contemporary design with Italian elegance.",
			Content:  "Detailed case study of a modern Milanese home, featuring contemporary furniture and innovative design solutions...",
			Author:   "Alessandro Rossi",
			Date:     "2022-09-28",
			Category: "Design",
			Image:    "https://via.placeholder.com/600x400/FF6347/FFFFFF?text=Milan+Home",
			Tags:     []string{"modern", "milan", "interior"},
		},
		{
			ID:       "5",
			Title:    "Colorful office redesign",
			Excerpt:  "See how a drab office space was transformed into an inspiring workplace using bold colors and creative furniture solutions.",
			Content:  "Before and after case study of an office redesign project, focusing on color psychology and productivity...",
			Author:   "Jessica Park",
			Date:     "2022-09-20",
			Category: "Interior",
			Image:    "https://via.placeholder.com/600x400/32CD32/FFFFFF?text=Office+Design",
			Tags:     []string{"office", "color", "productivity"},
		},
		{
			ID:       "6",
			Title:    "Sustainable furniture materials",
			Excerpt:  "Learn about eco-friendly materials that are revolutionizing the furniture industry and how to choose sustainable options.",
			Content:  "Comprehensive guide to sustainable furniture materials, including bamboo, reclaimed wood, and recycled materials...",
			Author:   "David Green",
			Date:     "2022-09-15",
			Category: "Wood",
			Image:    "https://via.placeholder.com/600x400/2E8B57/FFFFFF?text=Sustainable+Materials",
			Tags:     []string{"sustainable", "eco-friendly", "materials"},
		},
		{
			ID:       "7",
			Title:    "Small space furniture solutions",
			Excerpt:  "Maximize your small living space with clever furniture choices and space-saving design techniques.",
			Content:  "Practical tips for furnishing small spaces, including multifunctional furniture and storage solutions...",
			Author:   "Lisa Wang",
			Date:     "2022-09-08",
			Category: "Design",
			Image:    "https://via.placeholder.com/600x400/FF69B4/FFFFFF?text=Small+Spaces",
			Tags:     []string{"small-space", "multifunctional", "storage"},
		},
		{
			ID:       "8",
			Title:    "Vintage furniture restoration",
			Excerpt:  "Bring old furniture back to life with professional restoration techniques and creative upcycling ideas.",
			Content:  "Step-by-step guide to furniture restoration, including cleaning, repairing, and refinishing techniques...",
			Author:   "Robert Smith",
			Date:     "2022-09-01",
			Category: "Crafts",
			Image:    "https://via.placeholder.com/600x400/8B4513/FFFFFF?text=Vintage+Restoration",
			Tags:     []string{"vintage", "restoration", "upcycling"},
		},
	}
}
