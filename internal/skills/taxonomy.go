package skills

// The taxonomy is a fixed, curated list. Categories and terms are ordered
// slices rather than maps so recognition, canonicalization and ranking stay
// deterministic across runs.

type category struct {
	name  string
	terms []string
}

var technicalTaxonomy = []category{
	{"programming_languages", []string{
		"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "golang",
		"php", "swift", "kotlin", "rust", "scala", "perl", "dart", "sql", "bash",
		"shell", "powershell", "matlab", "objective-c",
		"html", "css", "sass", "less", "xml",
	}},
	{"frameworks_libraries", []string{
		"react", "angular", "vue", "django", "flask", "spring", "nodejs", "express",
		"laravel", "symfony", "rails", "jquery", "bootstrap", "tailwind", "redux", "nextjs",
		"svelte", "fastapi", "tensorflow", "pytorch", "keras", "scikit-learn",
		"pandas", "numpy", "matplotlib", "opencv", "spring boot", "hibernate",
		".net", "asp.net", "flutter", "react native", "electron",
	}},
	{"databases", []string{
		"mysql", "postgresql", "postgres", "oracle", "mongodb", "cassandra", "redis",
		"sqlite", "mariadb", "dynamodb", "couchdb", "firebase", "neo4j",
		"graphql", "elasticsearch", "solr", "hadoop", "hive", "snowflake",
		"influxdb", "memcached", "supabase",
	}},
	{"cloud_devops", []string{
		"aws", "amazon web services", "azure", "google cloud", "gcp", "docker", "kubernetes",
		"terraform", "jenkins", "gitlab ci", "github actions", "circleci",
		"ansible", "puppet", "chef", "prometheus", "grafana", "cloudformation",
		"heroku", "digitalocean", "vercel", "netlify", "lambda",
		"serverless", "microservices", "ci/cd", "helm", "istio", "devops", "sre",
	}},
	{"tools_platforms", []string{
		"git", "github", "gitlab", "bitbucket", "jira", "confluence", "trello",
		"figma", "sketch", "photoshop", "illustrator",
		"postman", "webpack", "babel", "npm", "yarn", "gradle", "maven", "cmake",
		"jupyter", "tableau", "power bi", "looker", "airflow", "linux", "unix", "agile", "scrum",
	}},
	{"data_science_ai", []string{
		"machine learning", "deep learning", "artificial intelligence",
		"nlp", "natural language processing", "computer vision", "neural networks",
		"reinforcement learning", "data mining", "etl", "data analysis",
		"statistical analysis", "a/b testing", "time series",
		"regression", "classification", "clustering", "data visualization",
		"feature engineering", "big data", "data pipeline",
		"data modeling", "data warehouse", "data lake", "predictive modeling",
	}},
}

var softSkills = []string{
	"communication", "teamwork", "collaboration", "problem solving", "problem-solving",
	"critical thinking", "leadership", "time management", "adaptability", "creativity",
	"flexibility", "interpersonal", "attention to detail", "detail-oriented",
	"project management", "planning", "organization", "multitasking",
	"prioritization", "analytical", "presentation", "negotiation",
	"conflict resolution", "customer service", "team player", "proactive", "initiative",
	"self-motivated", "self-starter", "decision making", "decision-making",
	"mentoring", "coaching", "public speaking", "active listening",
	"work ethic", "resilience", "strategic thinking", "innovation",
}

// normalizeReplacements folds common spelling variants onto the taxonomy's
// declared spelling before matching.
var normalizeReplacements = []struct {
	from, to string
}{
	{"js", "javascript"},
	{"react.js", "react"},
	{"reactjs", "react"},
	{"vue.js", "vue"},
	{"vuejs", "vue"},
	{"node.js", "nodejs"},
	{"node", "nodejs"},
	{"next.js", "nextjs"},
	{"express.js", "express"},
	{"postgresql", "postgres"},
}

// allTechnical returns every technical term in taxonomy declaration order.
func allTechnical() []string {
	var out []string
	for _, c := range technicalTaxonomy {
		out = append(out, c.terms...)
	}
	return out
}

func isTechnical(term string) bool {
	for _, c := range technicalTaxonomy {
		for _, t := range c.terms {
			if t == term {
				return true
			}
		}
	}
	return false
}

func isSoft(term string) bool {
	for _, s := range softSkills {
		if s == term {
			return true
		}
	}
	return false
}
