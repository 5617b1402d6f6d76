package knowledge

// Built-in tables. These are the fallback values used when no override
// file is configured; every table can be replaced at runtime from a
// YAML file (see Base.LoadFile).

func defaultCuratedSkills() map[string][]string {
	return map[string][]string{
		"Advocate":                  {"legal", "law", "advocate", "court", "district", "courts", "criminal", "cases", "chennai", "high", "matters", "paper", "llb", "civil", "drafting"},
		"Arts":                      {"arts", "council", "british", "music", "days", "events", "experience", "state", "managing", "new", "marketing", "nagpur", "workshop", "board", "programmes"},
		"Automation Testing":        {"qtp", "good", "integration", "involved", "cases", "selenium", "manual", "regression", "creation", "driven", "functional", "release", "case", "plan", "bug"},
		"Blockchain":                {"blockchain", "ethereum", "smart", "computer", "build", "global", "contracts", "product", "solidity", "limited", "analytics", "html", "javascript", "css", "networking"},
		"Business Analyst":          {"requirement", "functional", "analysis", "analyst", "user", "report", "cases", "processes", "gathering", "cash", "maintain", "excel", "documentation", "end", "users"},
		"Civil Engineer":            {"civil", "site", "construction", "inspection", "drawings", "material", "building", "name", "etc", "ensure", "autocad", "position", "including", "job", "specifications"},
		"Data Science":              {"learning", "science", "machine", "analytics", "analysis", "deep", "sap", "text", "platform", "information", "hana", "nlp", "industry", "experience", "neural"},
		"Database":                  {"oracle", "databases", "backup", "installation", "servers", "administrator", "monitoring", "creating", "log", "rman", "linux", "backups", "user", "production", "managing"},
		"DevOps Engineer":           {"shell", "devops", "servers", "build", "applications", "scripts", "linux", "users", "cloud", "scripting", "deployment", "different", "commerce", "creating", "aws"},
		"DotNet Developer":          {"net", "asp", "jquery", "dot", "mvc", "javascript", "framework", "layer", "html", "visual", "css", "designing", "studio", "end", "comments"},
		"ETL Developer":             {"etl", "informatica", "talend", "unix", "mappings", "oracle", "unit", "jobs", "center", "source", "warehouse", "job", "power", "files", "reconciliation"},
		"Electrical Engineering":    {"electrical", "maintenance", "power", "operation", "control", "plant", "layout", "equipment", "cable", "panels", "panel", "completed", "drawing", "schedules", "distribution"},
		"HR":                        {"payroll", "june", "computer", "mba", "statutory", "compliance", "employee", "salary", "employees", "dynamics", "school", "payment", "form", "accounting", "dbms"},
		"Hadoop":                    {"hadoop", "hive", "sqoop", "hdfs", "spark", "cluster", "pig", "involved", "mapreduce", "queries", "hbase", "tables", "scala", "map", "reduce"},
		"Health and Fitness":        {"fitness", "health", "gym", "nutrition", "science", "related", "handling", "queries", "customers", "hotel", "centre", "high", "good", "people", "spa"},
		"Java Developer":            {"ajax", "spring", "jsp", "hibernate", "javascript", "servlet", "jquery", "computer", "title", "systems", "databases", "amravati", "website", "operating", "oracle"},
		"Mechanical Engineer":       {"mechanical", "products", "vendor", "cost", "vendors", "machine", "proposal", "manufacturing", "order", "also", "field", "quotations", "ensure", "maintain", "estimation"},
		"Network Security Engineer": {"network", "security", "cisco", "configuration", "firewall", "etc", "switches", "servers", "firewalls", "devices", "troubleshooting", "asa", "troubleshoot", "routing", "maintaining"},
		"Operations Manager":        {"ensuring", "job", "timely", "ensure", "meetings", "honeywell", "control", "monitored", "ges", "fat", "customers", "managing", "activity", "international", "delivery"},
		"PMO":                       {"report", "responsible", "sla", "documentation", "risk", "resource", "monitor", "senior", "maintain", "ensure", "reporting", "pmo", "billing", "delivery", "ability"},
		"Python Developer":          {"completed", "internal", "django", "computer", "movex", "erp", "rest", "api", "agile", "science", "html", "june", "mongodb", "created", "successfully"},
		"SAP Developer":             {"sap", "hana", "users", "webi", "bods", "universe", "end", "views", "order", "experience", "performance", "implemented", "user", "nestle", "involved"},
		"Sales":                     {"marketing", "office", "targets", "cricket", "staff", "performance", "managing", "clients", "leads", "high", "school", "calling", "good", "lead", "job"},
		"Testing":                   {"check", "transformer", "android", "assembly", "inspection", "electronics", "resistance", "core", "power", "name", "transformers", "tests", "good", "electrical", "state"},
		"Web Designing":             {"bootstrap", "jquery", "developed", "roles", "responsibility", "website", "designed", "com", "photoshop", "php", "javascript", "nagpur", "trust", "made", "loan"},
	}
}

func defaultSkillKeywords() []string {
	return []string{
		"python", "java", "sql", "machine learning", "data analysis", "excel",
		"communication", "leadership", "project management", "deep learning",
		"nlp", "statistics", "cloud", "aws", "azure", "pandas", "numpy",
	}
}

func defaultEducationKeywords() []string {
	return []string{
		"bachelor", "master", "phd", "university", "college", "degree",
		"b.sc", "m.sc", "bachelor of", "master of",
	}
}

func defaultExperienceKeywords() []string {
	return []string{
		"engineer", "developer", "manager", "analyst", "consultant",
		"intern", "specialist", "scientist",
	}
}

func defaultBuzzwords() []string {
	return []string{
		"synergy", "dynamic", "motivated", "passionate", "proactive",
		"results-driven", "team player", "go-getter", "self-starter",
		"detail-oriented", "hardworking", "thought leader", "guru",
		"ninja", "rockstar",
	}
}

func defaultSectionHeaders() []string {
	return []string{
		"summary", "experience", "education", "skills", "projects",
		"certifications", "contact",
	}
}

func defaultCategoryRoles() map[string]string {
	return map[string]string{
		"Data Science":           "Data Scientist",
		"Database":               "Database Administrator",
		"Testing":                "QA Engineer",
		"Automation Testing":     "Automation Test Engineer",
		"Web Designing":          "Web Designer",
		"Electrical Engineering": "Electrical Engineer",
		"HR":                     "HR Generalist",
		"Sales":                  "Sales Executive",
		"Blockchain":             "Blockchain Developer",
		"Hadoop":                 "Hadoop Developer",
		"Health and Fitness":     "Fitness Trainer",
		"Arts":                   "Arts Coordinator",
		"PMO":                    "PMO Analyst",
	}
}

func defaultRoleLadder() map[string][]string {
	return map[string][]string{
		"Data Scientist":            {"Data Analyst", "Machine Learning Engineer", "Data Architect"},
		"Data Analyst":              {"Data Scientist", "Business Analyst"},
		"Java Developer":            {"Senior Java Developer", "Backend Architect", "Engineering Manager"},
		"Python Developer":          {"Senior Python Developer", "Machine Learning Engineer", "Backend Architect"},
		"DotNet Developer":          {"Senior DotNet Developer", "Solutions Architect"},
		"Web Designer":              {"UI Engineer", "Frontend Developer", "UX Lead"},
		"DevOps Engineer":           {"Site Reliability Engineer", "Platform Engineer", "Cloud Architect"},
		"Database Administrator":    {"Data Engineer", "Database Architect"},
		"ETL Developer":             {"Data Engineer", "Data Architect"},
		"Hadoop Developer":          {"Big Data Engineer", "Data Platform Engineer"},
		"QA Engineer":               {"Automation Test Engineer", "QA Lead"},
		"Automation Test Engineer":  {"SDET", "QA Architect"},
		"Business Analyst":          {"Product Manager", "Senior Business Analyst"},
		"Network Security Engineer": {"Security Architect", "SOC Lead"},
		"Blockchain Developer":      {"Smart Contract Engineer", "Protocol Engineer"},
		"Civil Engineer":            {"Project Engineer", "Construction Manager"},
		"Mechanical Engineer":       {"Design Engineer", "Production Manager"},
		"Electrical Engineer":       {"Senior Electrical Engineer", "Plant Manager"},
		"Operations Manager":        {"Senior Operations Manager", "Director of Operations"},
		"PMO Analyst":               {"Project Manager", "Program Manager"},
		"HR Generalist":             {"HR Manager", "Talent Acquisition Lead"},
		"Sales Executive":           {"Sales Manager", "Account Director"},
		"Advocate":                  {"Senior Advocate", "Legal Counsel"},
		"SAP Developer":             {"SAP Consultant", "SAP Architect"},
		"Fitness Trainer":           {"Senior Trainer", "Fitness Center Manager"},
		"Arts Coordinator":          {"Program Manager", "Creative Director"},
	}
}

const defaultGapThresholdMonths = 6
