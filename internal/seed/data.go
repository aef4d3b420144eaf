package seed

// Literal demo datasets. Links that don't exist yet are nil so the paired
// visibility flags stay meaningful.

type skillSeed struct {
	title        string
	technologies string
	order        int
	icon         string
}

type projectSeed struct {
	title        string
	description  string
	technologies string
	source       *string
	demoVideo    *string
	liveDemo     *string
	icon         string
	featured     bool
	order        int
}

type internshipSeed struct {
	title        string
	company      string
	period       string
	description  string
	technologies string
	source       *string
	demoVideo    *string
	liveDemo     *string
	icon         string
	order        int
}

type certificationSeed struct {
	title       string
	issuer      string
	date        string
	description string
	image       string
	icon        string
	order       int
}

type achievementSeed struct {
	title       string
	role        string
	category    string
	description string
	source      *string
	demoVideo   *string
	liveDemo    *string
	icon        string
	order       int
}

type microSaasSeed struct {
	title        string
	subtitle     string
	role         string
	status       string
	description  string
	technologies string
	icon         string
	color        string
	order        int
}

func ptr(s string) *string { return &s }

var githubProfile = ptr("https://github.com/asharish1805")

var skills = []skillSeed{
	{"Programming Languages", "Python, Java, SQL", 1, "fas fa-code"},
	{"Data Analysis & Visualization", "Pandas, NumPy, Matplotlib, Seaborn, Qlik Sense", 2, "fas fa-chart-bar"},
	{"Machine Learning", "Time-Series Forecasting, Regression Models, Model Training and Evaluation", 3, "fas fa-brain"},
	{"Web Development", "HTML5, CSS3, JavaScript, Flask", 4, "fas fa-laptop-code"},
	{"Web Scraping & Automation", "BeautifulSoup, Requests, Automated Data Extraction", 5, "fas fa-robot"},
	{"Databases", "MySQL, SQLite", 6, "fas fa-database"},
	{"Dashboards & Analytics", "Interactive BI Dashboards, Supply Chain Analytics, Business Intelligence", 7, "fas fa-tachometer-alt"},
	{"Cloud & Deployment", "Render, Base44, Web Application Hosting", 8, "fas fa-cloud"},
	{"Tools & Platforms", "Git, REST APIs, Qlik Sense, VS Code", 9, "fas fa-tools"},
	{"Software Engineering Practices", "Modular Design, API Integration, Prototype Development, Debugging", 10, "fas fa-cogs"},
}

var projects = []projectSeed{
	{
		title:        "Reservoir Water Demand Forecasting and Storage Optimization System",
		description:  "Advanced ML-based system for predicting water demand and optimizing reservoir storage using time-series forecasting, regression models, and interactive Flask dashboard.",
		technologies: "Python, Time-Series Forecasting, Flask, Regression Models, Data Optimization",
		source:       githubProfile,
		icon:         "fas fa-tint",
		featured:     true,
		order:        1,
	},
	{
		title:        "Automated Job Board Aggregation and Intelligent Search Platform",
		description:  "Web scraping and automation platform aggregating job listings from multiple sources with intelligent search, real-time updates, and REST API integration.",
		technologies: "Python, BeautifulSoup, Web Scraping, Flask, REST APIs",
		source:       githubProfile,
		icon:         "fas fa-briefcase",
		order:        2,
	},
	{
		title:        "IT Industry Insights and Business Analytics Dashboard",
		description:  "Comprehensive BI dashboard providing insights into IT industry trends, business metrics, and predictive analytics for data-driven decision making.",
		technologies: "Business Intelligence, Python, Data Analytics, Visualization",
		source:       githubProfile,
		icon:         "fas fa-chart-line",
		order:        3,
	},
	{
		title:        "Interactive Qlik-Based Supply Chain Analytics Dashboard",
		description:  "Advanced supply chain analytics dashboard using Qlik Sense on DataCo case study for optimizing logistics, inventory management, and delivery performance.",
		technologies: "Qlik Sense, Supply Chain Analytics, Business Intelligence, Data Visualization",
		source:       githubProfile,
		icon:         "fas fa-truck",
		order:        4,
	},
	{
		title:        "Smart India Hackathon 2025 Website Replication and System Implementation",
		description:  "Full-stack web application replicating SIH platform with participant registration, team management, problem statements, and admin dashboard functionalities.",
		technologies: "HTML/CSS/JavaScript, Flask, MySQL, Full-Stack Development",
		source:       githubProfile,
		icon:         "fas fa-trophy",
		order:        5,
	},
	{
		title:        "Neural Network-Based Quantum-Resistant Cryptographic Framework",
		description:  "Advanced cryptographic system using neural networks to develop quantum-resistant encryption algorithms for secure data protection against future quantum computing threats.",
		technologies: "Deep Learning, TensorFlow, Cryptography, Security",
		source:       githubProfile,
		icon:         "fas fa-shield-alt",
		order:        6,
	},
}

var internships = []internshipSeed{
	{
		title:        "Machine Learning Intern",
		company:      "CodingMissions IT Solutions",
		period:       "Aug 2024 – Oct 2024",
		description:  "Focused on data preprocessing, feature engineering, and model development\nBuilt and evaluated machine learning models for real-world applications\nWorked on model optimization and hyperparameter tuning techniques",
		technologies: "Python, Machine Learning, Scikit-learn",
		icon:         "fas fa-briefcase",
		order:        1,
	},
	{
		title:        "AI-ML-DS Intern",
		company:      "International Institute of Digital Technologies and Blackbuck Engineers, APSCHE",
		period:       "Jun 2024 – Jul 2024",
		description:  "Built ML models and performed data preprocessing on real-world datasets\nConducted data analysis and developed predictive analytics solutions\nGained hands-on experience with AI/ML tools and frameworks",
		technologies: "Machine Learning, Data Science, Python",
		icon:         "fas fa-brain",
		order:        2,
	},
}

var certifications = []certificationSeed{
	{"Quantum Hardware Technologies & Challenges", "QuEdX TalkOn", "Jan 2026",
		"Comprehensive understanding of quantum hardware architectures, qubit technologies, and error mitigation challenges in quantum computing systems.",
		"certificates/quantum-hardware-cert.jpg", "fas fa-atom", 1},
	{"Quantum Fundamentals", "IBM Quantum", "2025",
		"Gained solid foundation in quantum mechanics principles, qubits, quantum gates, and basic quantum algorithms using Qiskit.",
		"certificates/quantum-fundamentals-cert.jpg", "fas fa-atom", 2},
	{"AI/ML & Geodata Analysis", "ISRO", "2025",
		"Specialized training in applying artificial intelligence and machine learning techniques for analyzing geospatial data and satellite imagery.",
		"certificates/isro-cert.jpg", "fas fa-satellite", 3},
	{"Power BI Data Analyst Associate", "Microsoft", "2025",
		"Proficient in creating interactive dashboards, data visualization, DAX calculations, and business intelligence reporting with Power BI.",
		"certificates/powerbi-cert.jpg", "fas fa-chart-bar", 4},
	{"SQL for Data Science", "IBM", "2025",
		"Mastered SQL queries, database management, data manipulation, joins, and aggregations for data science and analytics workflows.",
		"certificates/sql-cert.jpg", "fas fa-graduation-cap", 5},
	{"C Programming", "UC Santa Cruz", "2023",
		"Strong foundation in C programming, including pointers, memory management, data structures, and algorithm implementation.",
		"certificates/c-programming-cert.jpg", "fas fa-graduation-cap", 6},
	{"Deep Learning Specialization", "DeepLearning.AI", "2025",
		"Mastered neural networks, CNNs, RNNs, and hyperparameter tuning.",
		"certificates/dl-specialization.jpg", "fas fa-brain", 7},
	{"Google Cloud Professional Architect", "Google Cloud", "2025",
		"Designed scalable and reliable cloud infrastructure solutions on GCP.",
		"certificates/gcp-architect.jpg", "fas fa-cloud", 8},
	{"Full Stack Web Development", "Udemy", "2024",
		"Comprehensive boot camp covering React, Node.js, Express, and MongoDB.",
		"certificates/fullstack-bootcamp.jpg", "fas fa-laptop-code", 9},
	{"Advanced Data Structures & Algorithms", "Coursera", "2024",
		"In-depth study of graph algorithms, dynamic programming, and data structure optimization.",
		"certificates/dsa-advanced.jpg", "fas fa-code-branch", 10},
	{"Cyber Security Fundamentals", "CompTIA", "2024",
		"Understanding of network security, threat management, and cryptography.",
		"certificates/comptia-security.jpg", "fas fa-user-secret", 11},
	{"Agile Project Management", "Google", "2024",
		"Learned Agile methodologies, Scrum framework, and effective team collaboration strategies.",
		"certificates/agile-pm.jpg", "fas fa-tasks", 12},
}

var achievements = []achievementSeed{
	{
		title:       "MIT iQuHACK 2026 (Remote)",
		role:        "Selected Participant",
		category:    "Hackathon",
		description: "Worked on quantum computing challenges focusing on quantum algorithms and hybrid quantum–AI approaches",
		icon:        "fas fa-atom",
		order:       1,
	},
	{
		title:       "Smart India Hackathon 2024",
		role:        "Finalist",
		category:    "Hackathon",
		description: "Selected among top teams nationwide for developing an AI-based solution for smart city management",
		source:      githubProfile,
		icon:        "fas fa-trophy",
		order:       2,
	},
	{
		title:       "MSME IDEA Hackathon 2024",
		role:        "Participant",
		category:    "Hackathon",
		description: "Participated in MSME IDEA Hackathon developing innovative solutions for MSME sector challenges",
		icon:        "fas fa-medal",
		order:       3,
	},
	{
		title:       "AI & Data Science Projects",
		role:        "6 Major Projects",
		category:    "Project",
		description: "Successfully completed 6 comprehensive AI/ML projects covering forecasting, web scraping, BI dashboards, and cryptography",
		icon:        "fas fa-laptop-code",
		order:       4,
	},
	{
		title:       "Academic Performance",
		role:        "7.47 CGPA",
		category:    "Education",
		description: "Maintained good academic standing throughout B.E. in Artificial Intelligence & Data Science program",
		icon:        "fas fa-star",
		order:       5,
	},
	{
		title:       "Technical Club Leadership",
		role:        "AI Club Member",
		category:    "Leadership",
		description: "Active member organizing workshops and sessions on AI/ML technologies for fellow students",
		icon:        "fas fa-users",
		order:       6,
	},
}

var microSaas = []microSaasSeed{
	{
		title:        "StreamFlow",
		subtitle:     "Netflix AI Copilot",
		role:         "Lead Developer & Product Designer",
		status:       "Prototype (MVP)",
		description:  "Built a 'Micro-SaaS' desktop application to automate streaming workflows, reducing user interaction time by 90%.\nEngineered a Computer Vision layer (OpenCV) to autonomously detect and click dynamic UI elements like 'Skip Intro'.\nDeveloped a custom recommendation engine mapping user moods to content queries using complex logic.\nDesigned a native-style GUI (Tkinter) with secure coordinate-based authentication handling.",
		technologies: "Python, Selenium, Tkinter, OpenCV, Threading",
		icon:         "fas fa-play",
		color:        "linear-gradient(135deg, #E50914, #B81D24)",
		order:        1,
	},
	{
		title:        "RecruitAI",
		subtitle:     "Smart Hiring Assistant",
		role:         "Full Stack Developer",
		status:       "Beta Testing",
		description:  "Developed an AI-powered recruitment platform automating resume screening and scheduling.\nImplemented NLP algorithms to parse resumes and match candidates to job descriptions with 85% accuracy.\nReduced hiring administrative time by 40% through automated interview scheduling workflows.\nBuilt a responsive React frontend with real-time candidate analytics.",
		technologies: "Python, FastAPI, React, NLP, PostgreSQL",
		icon:         "fas fa-robot",
		color:        "linear-gradient(135deg, #0077B5, #00A0DC)",
		order:        2,
	},
	{
		title:        "DocuMind",
		subtitle:     "Intelligent Document Analysis",
		role:         "AI Engineer",
		status:       "Concept",
		description:  "Designed a document processing SaaS using OCR and LLMs to extract insights from legal documents.\nImplemented Tesseract OCR for high-accuracy text extraction from scanned PDFs and images.\nIntegrated Transformer models to summarize complex legal jargon into actionable executive summaries.\nEnables instant querying of document repositories using natural language.",
		technologies: "Python, Tesseract, Transformers, Flask, React",
		icon:         "fas fa-file-invoice",
		color:        "linear-gradient(135deg, #10B981, #34D399)",
		order:        3,
	},
	{
		title:        "FinTrack",
		subtitle:     "Personal Finance Analytics",
		role:         "Solutions Architect",
		status:       "Development",
		description:  "Architected a personal finance management tool aggregating data from multiple bank accounts.\nDeveloped ML models to categorize transaction expenses automatically with 90% precision.\nCreated predictive budget insights helping users forecast savings based on spending habits.\nVisualized financial health through interactive charts using Chart.js.",
		technologies: "Node.js, Express, MongoDB, Chart.js, ML.NET",
		icon:         "fas fa-chart-pie",
		color:        "linear-gradient(135deg, #F59E0B, #FBBF24)",
		order:        4,
	},
	{
		title:        "EdSync",
		subtitle:     "Smart Learning Platform",
		role:         "Lead Developer",
		status:       "Ideation",
		description:  "Conceptualized an adaptive learning platform customizing study plans based on student performance.\nFeatures real-time progress tracking to identify knowledge gaps and recommend resources.\nUses collaborative filtering to suggest peer study groups and relevant learning materials.\nDesigned a gamified interface to increase student engagement and retention.",
		technologies: "Vue.js, Firebase, Python, Sklearn",
		icon:         "fas fa-graduation-cap",
		color:        "linear-gradient(135deg, #8B5CF6, #A78BFA)",
		order:        5,
	},
	{
		title:        "QuantumLeap",
		subtitle:     "Quantum Sim Interface",
		role:         "Researcher",
		status:       "Prototype",
		description:  "Developed a visual interface for simulating quantum circuits and visualizing qubit states.\nImplemented the Bloch sphere visualization using Three.js for intuitive quantum state representation.\nIntegrated Qiskit backend to execute quantum algorithms and display real-time results.\nMakes complex quantum computing concepts accessible to students through interactive simulations.",
		technologies: "Python, Qiskit, React, Three.js",
		icon:         "fas fa-atom",
		color:        "linear-gradient(135deg, #3B82F6, #93C5FD)",
		order:        6,
	},
	{
		title:        "CyberSentinel",
		subtitle:     "Threat Detection AI",
		role:         "Security Engineer",
		status:       "Concept",
		description:  "Proposed a real-time network traffic anomaly detection system using deep learning autoencoders.\nDesigned to identify potential security breaches and zero-day attacks by analyzing traffic patterns.\nUses PyTorch for training models on normal traffic data to detect deviations.\nIntegrated Grafana for real-time monitoring and alerting of suspicious activities.",
		technologies: "Python, PyTorch, Scapy, Grafana",
		icon:         "fas fa-shield-virus",
		color:        "linear-gradient(135deg, #EF4444, #FCA5A5)",
		order:        7,
	},
	{
		title:        "HealthPulse",
		subtitle:     "Remote Patient Monitoring",
		role:         "Backend Dev",
		status:       "Development",
		description:  "Building an IoT-enabled platform for continuous monitoring of patient vitals remotely.\nConnects wearable devices via MQTT to a centralized MongoDB database for real-time tracking.\nImplements AI-driven alerts to notify medical staff of irregular vital signs immediately.\nDeveloping a secure Flutter mobile app for patients to view their health metrics.",
		technologies: "Node.js, MQTT, MongoDB, Flutter",
		icon:         "fas fa-heartbeat",
		color:        "linear-gradient(135deg, #EC4899, #FBCFE8)",
		order:        8,
	},
}
