// Package content holds the static records the page is rendered from.
package content

var (
	Name     = "Akshat Bansal"
	Initials = "AB"
	Tagline  = "Full-Stack Developer & Cloud Computing Enthusiast"

	HeroIntro = `Building robust web applications and cloud solutions with a focus on performance,
	scalability, and user experience. Passionate about creating technology that makes a difference.`

	// TypedPhrases cycle in the hero's typewriter line.
	TypedPhrases = []string{
		"Full-Stack Developer",
		"Cloud Computing Enthusiast",
		"MERN Stack Developer",
		"System Designer",
	}

	AboutMe = []string{
		`Hello! I'm Akshat Bansal, a passionate Full-Stack Developer with expertise in JavaScript and the MERN stack.
	I'm deeply interested in Cloud Computing and System Design, constantly exploring new technologies and methodologies.`,
		`My journey in technology began during my undergraduate studies, where I developed a strong foundation in computer science fundamentals.
	Since then, I've been building web applications that are not only functional but also provide exceptional user experiences.`,
		`I believe in writing clean, maintainable code and following best practices in software development.
	My approach involves understanding the business requirements thoroughly and then crafting elegant solutions that meet those needs.`,
	}

	Education = Degree{
		Title:       "B.Tech, Computer Science & Engineering",
		Institution: "Chitkara University, Baddi",
	}

	FocusAreas = []string{
		"Full-Stack Development",
		"Cloud Computing",
		"System Design",
	}

	FooterBlurb = `Full-Stack Developer & Cloud Computing Enthusiast, building innovative web applications and cloud solutions.`

	SiteDescription = `Full-Stack Developer and Cloud Computing Enthusiast with expertise in building scalable web applications and cloud solutions.`
)
