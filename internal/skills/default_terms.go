package skills

// defaultTerms is the built-in reference vocabulary, grouped roughly by area.
// Order matters: scan results and job-description keyword sets preserve it.
var defaultTerms = []string{
	// Programming languages
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "PHP", "Ruby",
	"Swift", "Go", "Kotlin", "Rust", "Scala", "Perl", "R", "MATLAB",
	"Objective-C", "Bash", "PowerShell",

	// Web
	"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Express",
	"Django", "Flask", "Laravel", "Ruby on Rails", "ASP.NET", "Spring",
	"jQuery", "Bootstrap", "Redux", "GraphQL", "RESTful API",

	// Mobile
	"Android", "iOS", "React Native", "Flutter", "Xamarin",

	// Databases
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "SQLite", "Oracle", "Redis",
	"Cassandra", "DynamoDB", "Elasticsearch", "Neo4j", "Firebase",

	// DevOps and cloud
	"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Jenkins", "Git",
	"GitHub", "Bitbucket", "CI/CD", "Terraform", "Ansible", "Prometheus",
	"Grafana", "Linux", "Unix",

	// Data science
	"TensorFlow", "PyTorch", "scikit-learn", "Pandas", "NumPy", "Keras",
	"OpenCV", "Machine Learning", "Deep Learning", "Data Analysis",
	"Data Visualization", "Hadoop", "Spark", "NLP", "Computer Vision",

	// Software engineering practices
	"OOP", "Design Patterns", "Agile", "Scrum", "Kanban", "Microservices",
	"Unit Testing", "Integration Testing", "TDD", "BDD",

	// Enterprise systems
	"SAP", "SAP BASIS", "SAP HANA", "SAP ABAP", "SAP ERP", "SAP S/4HANA",
	"SAP Fiori", "SAP NetWeaver", "ERP", "CRM", "Salesforce",
}
