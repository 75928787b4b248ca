package parsers

import "regexp"

// QualificationLevel is an ordered education tier.
type QualificationLevel string

const (
	LevelPhD         QualificationLevel = "phd"
	LevelMasters     QualificationLevel = "masters"
	LevelBachelors   QualificationLevel = "bachelors"
	LevelDiploma     QualificationLevel = "diploma"
	LevelCertificate QualificationLevel = "certificate"
	LevelHighSchool  QualificationLevel = "high_school"
	LevelNone        QualificationLevel = ""
)

// Priority returns the comparison rank of a qualification level. Higher wins.
func (l QualificationLevel) Priority() int {
	switch l {
	case LevelPhD:
		return 6
	case LevelMasters:
		return 5
	case LevelBachelors:
		return 4
	case LevelDiploma:
		return 3
	case LevelCertificate:
		return 2
	case LevelHighSchool:
		return 1
	default:
		return 0
	}
}

// AchievementCategory classifies an extracted achievement line.
type AchievementCategory string

const (
	CategoryAward         AchievementCategory = "awards"
	CategoryCertification AchievementCategory = "certifications"
	CategoryHonor         AchievementCategory = "honors"
	CategoryPublication   AchievementCategory = "publications"
	CategoryPatent        AchievementCategory = "patents"
)

// LevelRule binds a qualification level to the regex set that detects it.
// Rules are evaluated in priority order; the first level with a matching
// pattern wins for a given line.
type LevelRule struct {
	Level    QualificationLevel
	Patterns []*regexp.Regexp
}

// IndicatorRule binds an achievement category to its keyword set.
type IndicatorRule struct {
	Category   AchievementCategory
	Indicators []string
}

// Taxonomy holds every read-only keyword and pattern table the extractors and
// the scoring engine share. It is built once at startup and never mutated;
// ordered slices are used wherever iteration order affects output so results
// stay deterministic.
type Taxonomy struct {
	// CategoryOrder fixes the iteration order over SkillCategories.
	CategoryOrder   []string
	SkillCategories map[string][]string

	QualificationRules []LevelRule

	InstitutionPatterns []*regexp.Regexp
	FieldsOfStudy       []string

	SectorOrder     []string
	IndustrySectors map[string][]string

	PhonePatterns []*regexp.Regexp
	DatePatterns  []*regexp.Regexp
	YearPattern   *regexp.Regexp

	AchievementVerbs []*regexp.Regexp
	AchievementRules []IndicatorRule

	// Scoring-side tables. Category keys are shared with SkillCategories so
	// the skill extractor and the scoring engine always agree.
	SkillRelationships map[string][]string
	RelationshipOrder  []string
	CultureKeywords    []string
	SeniorityYears     map[string]int
	LeadershipKeywords []string
	LeadershipTitles   []string
	JobLevelKeywords   []struct {
		Level    QualificationLevel
		Keywords []string
	}
	JobFieldKeywords []struct {
		Field    string
		Keywords []string
	}
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// DefaultTaxonomy builds the standard screening taxonomy. Callers should build
// it once and inject it into every extractor and the scoring engine.
func DefaultTaxonomy() *Taxonomy {
	t := &Taxonomy{}

	t.CategoryOrder = []string{
		"programming_languages", "web_development", "mobile_development",
		"databases", "cloud_platforms", "data_science_ai", "cybersecurity",
		"devops", "project_management", "business_analysis",
		"finance_accounting", "marketing_sales", "human_resources",
		"supply_chain", "graphic_design", "video_audio", "soft_skills",
		"languages", "healthcare", "education", "legal", "engineering",
		"manufacturing", "retail", "zimbabwe_skills",
	}

	t.SkillCategories = map[string][]string{
		"programming_languages": {
			"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust", "swift", "kotlin",
			"php", "ruby", "scala", "r", "matlab", "perl", "html", "css", "sass", "less", "sql", "pl/sql",
			"bash", "shell", "powershell", "dart", "assembly", "fortran", "cobol", "visual basic", "vba",
		},
		"web_development": {
			"django", "flask", "fastapi", "spring", "express", "react", "angular", "vue", "svelte",
			"laravel", "ruby on rails", "asp.net", "node.js", "next.js", "nuxt.js", "jquery", "bootstrap",
			"tailwind", "webpack", "babel", "npm", "yarn", "graphql", "rest api", "soap", "json", "xml",
			"ajax", "web services", "microservices", "api development",
		},
		"mobile_development": {
			"android", "ios", "react native", "flutter", "xamarin", "ionic", "swiftui", "kotlin multiplatform",
			"mobile app development", "cross-platform development", "android studio", "xcode",
		},
		"databases": {
			"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle", "sql server", "cassandra",
			"dynamodb", "elasticsearch", "firebase", "cosmosdb", "mariadb", "db2", "hbase",
			"neo4j", "arangodb", "couchbase", "rethinkdb", "database design", "database management",
		},
		"cloud_platforms": {
			"aws", "azure", "google cloud", "gcp", "docker", "kubernetes", "terraform", "ansible",
			"jenkins", "gitlab", "github actions", "heroku", "digital ocean", "linode", "vultr",
			"ibm cloud", "oracle cloud", "alibaba cloud", "openshift", "cloudformation", "cloud computing",
		},
		"data_science_ai": {
			"machine learning", "deep learning", "tensorflow", "pytorch", "keras", "scikit-learn",
			"pandas", "numpy", "matplotlib", "seaborn", "plotly", "tableau", "power bi", "qlik",
			"data analysis", "data visualization", "statistical analysis", "natural language processing",
			"computer vision", "neural networks", "reinforcement learning", "big data", "hadoop", "spark",
			"data mining", "predictive modeling", "artificial intelligence", "nlp",
			"data engineering", "etl", "data warehousing", "business intelligence",
		},
		"cybersecurity": {
			"network security", "information security", "cyber security", "penetration testing", "ethical hacking",
			"vulnerability assessment", "siem", "soc", "firewall", "vpn", "encryption", "cryptography",
			"incident response", "threat intelligence", "risk assessment", "compliance", "gdpr", "hipaa",
			"pci dss", "iso 27001", "nist", "owasp", "security audit", "digital forensics",
		},
		"devops": {
			"ci/cd", "continuous integration", "continuous deployment", "gitlab ci",
			"puppet", "chef", "helm", "infrastructure as code",
			"monitoring", "logging", "prometheus", "grafana", "elk stack", "splunk",
		},
		"project_management": {
			"project management", "agile", "scrum", "kanban", "waterfall", "prince2", "pmp", "pmbok",
			"jira", "trello", "asana", "basecamp", "risk management", "stakeholder management",
			"budget management", "resource allocation", "project planning", "gantt chart", "critical path",
			"ms project", "smartsheet",
		},
		"business_analysis": {
			"business analysis", "requirements gathering", "user stories", "use cases", "process modeling",
			"bpmn", "uml", "swot analysis", "gap analysis", "cost-benefit analysis", "roi analysis",
			"kpi tracking", "metrics", "dashboard creation", "process improvement",
			"excel", "microsoft excel", "powerpoint",
		},
		"finance_accounting": {
			"financial analysis", "accounting", "bookkeeping", "financial modeling", "budgeting", "forecasting",
			"quickbooks", "xero", "sage", "ifrs", "gaap", "tax preparation", "audit", "internal controls",
			"financial reporting", "cash flow management", "investment analysis",
			"sap fico", "oracle financials", "financial planning",
		},
		"marketing_sales": {
			"digital marketing", "social media marketing", "seo", "sem", "google analytics", "google ads",
			"facebook ads", "content marketing", "email marketing", "marketing automation", "hubspot",
			"market research", "brand management", "sales", "business development", "lead generation",
			"customer relationship management", "crm", "salesforce", "negotiation", "presentation skills",
			"copywriting", "brand strategy", "market analysis",
		},
		"human_resources": {
			"recruitment", "talent acquisition", "onboarding", "training and development", "performance management",
			"compensation and benefits", "employee relations", "hr policies", "labor law", "succession planning",
			"organizational development", "change management", "diversity and inclusion", "hr analytics",
			"payroll management", "hris", "workday", "successfactors",
		},
		"supply_chain": {
			"supply chain management", "logistics", "inventory management", "procurement", "purchasing",
			"warehouse management", "demand planning", "supplier management", "sap mm", "oracle scm",
		},
		"graphic_design": {
			"adobe photoshop", "adobe illustrator", "adobe indesign", "adobe xd", "figma", "sketch",
			"coreldraw", "canva", "ui design", "ux design", "user experience", "user interface",
			"wireframing", "prototyping", "visual design", "brand identity", "logo design", "typography",
			"color theory", "print design", "digital design", "adobe creative suite",
		},
		"video_audio": {
			"video editing", "adobe premiere pro", "final cut pro", "after effects", "davinci resolve",
			"motion graphics", "animation", "3d modeling", "blender", "maya", "cinema 4d", "audio editing",
			"ableton live", "logic pro", "pro tools", "sound design", "podcast production",
		},
		"soft_skills": {
			"communication", "leadership", "teamwork", "problem solving", "critical thinking",
			"adaptability", "time management", "creativity", "collaboration", "analytical skills",
			"strategic planning", "presentation", "conflict resolution", "decision making",
			"emotional intelligence", "public speaking", "writing", "research", "attention to detail",
			"interpersonal skills", "customer service", "mentoring", "coaching",
		},
		"languages": {
			"english", "french", "spanish", "german", "chinese", "japanese", "arabic", "portuguese",
			"russian", "hindi", "shona", "ndebele", "swahili", "zulu", "afrikaans",
		},
		"healthcare": {
			"patient care", "medical terminology", "healthcare management", "clinical research",
			"pharmaceutical", "nursing", "medical coding", "hipaa compliance", "electronic health records",
			"medical devices", "healthcare analytics",
		},
		"education": {
			"teaching", "curriculum development", "lesson planning", "classroom management",
			"educational technology", "student assessment", "academic advising", "research methodology",
		},
		"legal": {
			"legal research", "contract law", "corporate law", "litigation", "legal writing",
			"intellectual property", "legal documentation", "case management",
		},
		"engineering": {
			"mechanical engineering", "electrical engineering", "civil engineering", "chemical engineering",
			"cad", "autocad", "solidworks", "simulation", "project engineering", "quality control",
		},
		"manufacturing": {
			"lean manufacturing", "six sigma", "quality assurance", "production planning",
			"manufacturing operations", "health and safety", "iso 9001",
		},
		"retail": {
			"retail management", "merchandising", "inventory control", "sales floor",
			"visual merchandising", "store operations", "point of sale", "retail analytics",
		},
		"zimbabwe_skills": {
			"zimswitch", "ecocash", "rtgs", "forex", "zimra", "rbz", "zimbabwean market",
			"local regulations", "zimbabwe business environment", "local banking", "zse", "zimbabwe stock exchange",
		},
	}

	t.QualificationRules = []LevelRule{
		{LevelPhD, compileAll(
			`\bph\.?d\.?\b`, `\bdoctorate\b`, `\bdoctor of philosophy\b`, `\bdphil\b`,
			`\bdoctoral\b`, `\bphd candidate\b`,
		)},
		{LevelMasters, compileAll(
			`\bmaster\b`, `\bmsc?\b`, `\bma\b`, `\bmba\b`, `\bmpa\b`, `\bllm\b`, `\bmed\b`,
			`\bpostgraduate\b`, `\bgraduate degree\b`, `\bmasters\b`, `\bmaster's\b`,
		)},
		{LevelBachelors, compileAll(
			`\bbachelor\b`, `\bbsc?\b`, `\bba\b`, `\bbcom\b`, `\bbeng\b`, `\bundergraduate\b`,
			`\bdegree\b`, `\bbachelor's\b`, `\bbtech\b`, `\bbachelor of\b`,
		)},
		{LevelDiploma, compileAll(
			`\bdiploma\b`, `\badvanced diploma\b`, `\bhigher diploma\b`, `\bnational diploma\b`,
			`\bpostgraduate diploma\b`,
		)},
		{LevelCertificate, compileAll(
			`\bcertificate\b`, `\bprofessional certificate\b`, `\bvocational certificate\b`,
			`\bcertification\b`, `\bcertified\b`,
		)},
		{LevelHighSchool, compileAll(
			`\ba level\b`, `\bo level\b`, `\bhigh school\b`, `\bsecondary education\b`,
			`\badvanced level\b`, `\bordinary level\b`, `\bsecondary school\b`,
		)},
	}

	t.InstitutionPatterns = compileAll(
		`(?i)University of (\w+\s?){1,3}`,
		`(?i)(\w+\s?){1,3}University`,
		`(?i)(\w+\s?){1,3}College`,
		`(?i)(\w+\s?){1,3}Institute`,
		`(?i)(\w+\s?){1,3}School`,
		`(?i)(\w+\s?){1,3}Polytechnic`,
		`(?i)Harare Institute of Technology`,
		`(?i)University of Zimbabwe`,
		`(?i)National University of Science and Technology`,
		`(?i)Africa University`,
		`(?i)Midlands State University`,
		`(?i)Great Zimbabwe University`,
		`(?i)Chinhoyi University of Technology`,
		`(?i)Bindura University`,
		`(?i)Lupane State University`,
		`(?i)Zimbabwe Open University`,
	)

	t.FieldsOfStudy = []string{
		"computer science", "information systems", "business administration", "engineering",
		"medicine", "law", "accounting", "finance", "marketing", "economics", "mathematics",
		"physics", "chemistry", "biology", "psychology", "sociology", "political science",
		"information technology", "software engineering", "data science", "artificial intelligence",
		"mechanical engineering", "electrical engineering", "civil engineering", "chemical engineering",
		"public health", "nursing", "pharmacy", "dentistry", "education", "teaching",
		"human resources", "management", "entrepreneurship", "international business",
		"journalism", "communications", "public relations", "graphic design", "architecture",
	}

	t.SectorOrder = []string{
		"technology", "finance", "healthcare", "education", "manufacturing",
		"retail", "marketing", "government", "consulting", "nonprofit",
	}
	t.IndustrySectors = map[string][]string{
		"technology":    {"software", "it", "technology", "computer", "programming", "developer", "engineer", "tech"},
		"finance":       {"banking", "finance", "investment", "accounting", "audit", "financial", "bank"},
		"healthcare":    {"medical", "healthcare", "hospital", "pharmaceutical", "nursing", "doctor", "health", "clinic"},
		"education":     {"education", "teaching", "academic", "university", "school", "lecturer", "college", "institution"},
		"manufacturing": {"manufacturing", "production", "factory", "industrial", "engineering", "plant", "assembly"},
		"retail":        {"retail", "sales", "customer service", "merchandising", "store", "shop", "outlet"},
		"marketing":     {"marketing", "advertising", "brand", "digital marketing", "social media", "promotion"},
		"government":    {"government", "public sector", "municipal", "civil service", "public service"},
		"consulting":    {"consulting", "consultant", "advisory", "strategy consulting"},
		"nonprofit":     {"nonprofit", "ngo", "non-governmental", "charity", "non profit"},
	}

	// Most specific regional patterns first, generic digit groupings last.
	t.PhonePatterns = compileAll(
		`\+263\s?\d{2}\s?\d{3}\s?\d{3,4}`,
		`07[1-8]\s?\d{3}\s?\d{3,4}`,
		`(\+?\d{1,3}[-.\s]?)?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,9}`,
		`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`,
		`\b\d{4}[-.\s]?\d{3}[-.\s]?\d{3}\b`,
	)

	t.DatePatterns = compileAll(
		`(?i)20\d{2}\s*[-–]\s*(?:20\d{2}|Present|Current|Now)`,
		`(?i)(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s*\d{4}\s*[-–]\s*(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s*\d{4}|Present|Current|Now)`,
		`\b(?:19|20)\d{2}\b`,
	)
	t.YearPattern = regexp.MustCompile(`20\d{2}|19\d{2}`)

	t.AchievementVerbs = compileAll(
		`achieved`, `increased`, `reduced`, `improved`, `led`, `managed`, `developed`,
		`implemented`, `saved`, `won`, `awarded`, `recognized`, `spearheaded`,
		`created`, `built`, `launched`, `optimized`, `streamlined`, `enhanced`,
		`delivered`, `exceeded`, `accomplished`, `completed`, `successfully`,
	)

	t.AchievementRules = []IndicatorRule{
		{CategoryAward, []string{"award", "prize", "recognition", "achievement award"}},
		{CategoryCertification, []string{"certification", "certified", "license", "accreditation"}},
		{CategoryHonor, []string{"honor", "scholarship", "fellowship", "dean's list"}},
		{CategoryPublication, []string{"publication", "paper", "journal", "conference"}},
		{CategoryPatent, []string{"patent", "invention", "intellectual property"}},
	}

	t.RelationshipOrder = []string{
		"python", "java", "javascript", "sql", "aws", "machine learning",
		"react", "docker", "project management", "financial analysis",
	}
	t.SkillRelationships = map[string][]string{
		"python":             {"django", "flask", "pandas", "numpy", "scikit-learn", "tensorflow", "keras"},
		"java":               {"spring", "hibernate", "j2ee", "android", "microservices"},
		"javascript":         {"react", "angular", "vue", "node.js", "typescript", "express"},
		"sql":                {"mysql", "postgresql", "oracle", "sql server", "database design"},
		"aws":                {"azure", "google cloud", "docker", "kubernetes", "terraform", "devops"},
		"machine learning":   {"deep learning", "tensorflow", "pytorch", "neural networks", "data science"},
		"react":              {"react native", "redux", "next.js", "frontend development"},
		"docker":             {"kubernetes", "containerization", "microservices", "devops"},
		"project management": {"agile", "scrum", "kanban", "jira", "stakeholder management"},
		"financial analysis": {"accounting", "forecasting", "budgeting", "financial modeling"},
	}

	t.CultureKeywords = []string{
		"fast-paced", "innovative", "collaborative", "team-oriented", "startup",
		"dynamic", "creative", "agile", "flexible", "remote", "hybrid",
		"growth mindset", "customer-focused", "results-driven", "entrepreneurial",
	}

	t.SeniorityYears = map[string]int{
		"entry-level": 0, "junior": 1, "mid-level": 3, "senior": 5,
		"lead": 7, "principal": 8, "executive": 10,
	}

	t.LeadershipKeywords = []string{
		"lead", "manage", "direct", "supervise", "head", "chief", "director",
		"manager", "supervisor", "team lead", "project lead", "oversee", "mentor",
	}
	t.LeadershipTitles = []string{"manager", "director", "head", "lead", "chief"}

	t.JobLevelKeywords = []struct {
		Level    QualificationLevel
		Keywords []string
	}{
		{LevelPhD, []string{"phd", "doctorate", "doctoral"}},
		{LevelMasters, []string{"master", "masters", "mba", "msc", "ma", "postgraduate"}},
		{LevelBachelors, []string{"bachelor", "degree", "undergraduate", "bsc", "ba", "bcom"}},
		{LevelDiploma, []string{"diploma", "certificate", "certification"}},
	}

	t.JobFieldKeywords = []struct {
		Field    string
		Keywords []string
	}{
		{"computer science", []string{"computer science", "cs", "software engineering", "information systems", "computing"}},
		{"business", []string{"business administration", "mba", "commerce", "business", "management"}},
		{"engineering", []string{"engineering", "engineer", "mechanical", "electrical", "civil", "chemical"}},
		{"mathematics", []string{"mathematics", "math", "statistics", "applied math"}},
		{"finance", []string{"finance", "accounting", "economics", "banking", "investment"}},
	}

	return t
}

// LevelScore maps a qualification level to the numeric score the scoring
// engine uses. Missing qualifications score 30.
func LevelScore(level QualificationLevel) int {
	switch level {
	case LevelPhD:
		return 100
	case LevelMasters:
		return 85
	case LevelBachelors:
		return 70
	case LevelDiploma:
		return 60
	case LevelCertificate:
		return 50
	default:
		return 30
	}
}
