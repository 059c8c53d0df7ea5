package taxonomy

// Category is an ordered group of canonical skill names. Order matters at build
// time: when a skill appears in more than one category, the later category wins
// the flat lookup, same as the insertion order of the source table.
type Category struct {
	Name   string
	Skills []string
}

var techSkills = []Category{
	{
		Name: "languages",
		Skills: []string{
			"c", "c++", "c#", "java", "python", "javascript", "typescript",
			"golang", "ruby", "php", "rust", "kotlin", "scala", "swift",
			"dart", "r", "perl",
			"bash", "shell", "powershell",
			"assembly", "vhdl", "verilog",
			"haskell", "clojure", "elixir", "erlang",
		},
	},
	{
		Name: "web_frontend",
		Skills: []string{
			"html", "css", "sass", "less",
			"react", "react.js", "next.js",
			"angular", "angularjs",
			"vue", "nuxt.js",
			"svelte", "sveltekit",
			"jquery", "bootstrap", "tailwind css", "material ui",
		},
	},
	{
		Name: "web_backend",
		Skills: []string{
			"node.js", "express", "fastify",
			"django", "flask", "fastapi",
			"spring", "spring boot",
			"asp.net", "asp.net core",
			"laravel", "codeigniter",
			"ruby on rails",
			"gin", "fiber",
		},
	},
	{
		Name: "mobile",
		Skills: []string{
			"android", "android studio", "kotlin", "java",
			"ios", "swift", "swiftui",
			"react native", "flutter", "dart",
			"ionic", "cordova",
		},
	},
	{
		Name: "cloud",
		Skills: []string{
			"aws", "amazon web services",
			"azure", "microsoft azure",
			"gcp", "google cloud", "google cloud platform",
			"digitalocean", "heroku", "vercel", "netlify",
			"firebase", "supabase", "openstack",
		},
	},
	{
		Name: "cloud_services",
		Skills: []string{
			"ec2", "s3", "lambda", "dynamodb", "rds", "api gateway",
			"cloudwatch", "cloudformation", "sns", "sqs", "eks",
			"azure functions", "azure devops", "cosmos db",
			"compute engine", "cloud run", "cloud functions",
			"bigquery", "pubsub",
		},
	},
	{
		Name: "devops",
		Skills: []string{
			"docker", "kubernetes", "k8s",
			"jenkins", "gitlab ci", "github actions", "circleci", "azure pipelines",
			"terraform", "ansible", "chef", "puppet",
			"argo cd", "helm",
			"nginx", "apache",
			"prometheus", "grafana", "splunk", "elk stack", "kibana",
			"sonarqube",
		},
	},
	{
		Name: "databases_sql",
		Skills: []string{
			"mysql", "postgresql", "sqlite",
			"mariadb", "oracle", "sql server",
			"redshift", "snowflake", "bigquery",
		},
	},
	{
		Name: "databases_nosql",
		Skills: []string{
			"mongodb", "redis", "dynamodb",
			"cassandra", "couchdb",
			"neo4j", "elasticsearch", "influxdb",
		},
	},
	{
		Name: "big_data",
		Skills: []string{
			"hadoop", "spark", "hive", "pig", "flink",
			"kafka", "kinesis", "zookeeper",
		},
	},
	{
		Name: "data_engineering",
		Skills: []string{
			"airflow", "dbt", "kafka connect",
			"databricks", "glue", "lake formation",
			"streamlit", "tableau", "power bi",
		},
	},
	{
		Name: "ml_frameworks",
		Skills: []string{
			"tensorflow", "pytorch", "keras",
			"scikit-learn", "xgboost", "lightgbm",
			"catboost",
		},
	},
	{
		Name: "nlp_ai",
		Skills: []string{
			"hugging face", "transformers", "langchain",
			"spacy", "nltk", "gensim",
			"openai", "llama", "bert", "gpt",
			"rag", "vector search", "chromadb", "milvus", "pinecone",
		},
	},
	{
		Name: "mlops",
		Skills: []string{
			"mlflow", "weights and biases", "wandb",
			"kubeflow", "dvc",
			"sagemaker",
		},
	},
	{
		Name: "cybersecurity",
		Skills: []string{
			"wireshark", "metasploit", "nmap", "burp suite",
			"nessus", "oscp", "owasp", "kali linux",
			"penetration testing", "ethical hacking",
		},
	},
	{
		Name: "testing",
		Skills: []string{
			"jest", "mocha", "chai",
			"pytest", "unittest",
			"selenium", "cypress", "junit",
		},
	},
	{
		Name: "networking",
		Skills: []string{
			"tcp/ip", "dns", "http", "https",
			"load balancing", "reverse proxy", "cdn",
		},
	},
	{
		Name: "api_technologies",
		Skills: []string{
			"rest api", "graphql", "grpc", "soap",
		},
	},
	{
		Name: "version_control",
		Skills: []string{
			"git", "github", "gitlab", "bitbucket",
		},
	},
	{
		Name: "operating_systems",
		Skills: []string{
			"linux", "ubuntu", "centos", "windows", "macos",
		},
	},
	{
		Name: "robotics_embedded",
		Skills: []string{
			"arduino", "raspberry pi", "ros",
			"embedded systems", "iot",
		},
	},
	{
		Name: "blockchain",
		Skills: []string{
			"solidity", "ethereum", "smart contracts",
			"web3", "polygon", "metamask",
		},
	},
	{
		Name: "game_engines",
		Skills: []string{
			"unity", "unreal engine",
		},
	},
	{
		Name: "monitoring_sre",
		Skills: []string{
			"prometheus", "grafana", "new relic", "datadog",
		},
	},
	{
		Name: "messaging",
		Skills: []string{
			"kafka", "rabbitmq", "activemq", "sqs", "pubsub",
		},
	},
}

// aliases maps common variants to the canonical skill name.
var aliases = map[string]string{
	// Cloud
	"amazon web services": "aws",
	"microsoft azure":     "azure",
	"google cloud":        "gcp",
	"google cloud platform": "gcp",

	// JS ecosystem
	"react.js": "react",
	"nextjs":   "next.js",
	"vuejs":    "vue",
	"nodejs":   "node.js",
	"node js":  "node.js",

	// ML/NLP
	"huggingface":  "hugging face",
	"ml ops":       "mlops",
	"scikit learn": "scikit-learn",

	// DevOps
	"k8s":   "kubernetes",
	"ci/cd": "cicd",
	"ci cd": "cicd",

	// Databases
	"postgres":  "postgresql",
	"ms sql":    "sql server",
	"sqlserver": "sql server",

	// Frameworks
	"springboot":   "spring boot",
	"asp.net core": "asp.net",
	"aspnet":       "asp.net",

	// AI/LLM
	"rag pipeline": "rag",
	"bert model":   "bert",
	"gpt model":    "gpt",
}
