package services

import "github.com/hitenstark10/tenx-tracking/models"

// searchQueries is the rotating topic list for external fetches. The query
// for a fetch is searchQueries[fetchCount % len(searchQueries)], so the ten
// daily fetches cover ten distinct topics before repeating.
var searchQueries = []string{
	"artificial intelligence breakthrough",
	"machine learning research",
	"deep learning neural network",
	"data science analytics",
	"AI technology innovation",
	"natural language processing",
	"computer vision AI",
	"reinforcement learning robotics",
	"generative AI model",
	"AI ethics regulation",
}

// curatedNews is the static backfill pool. Date and PublishedAt are stamped
// at backfill time so curated entries always read as today's content.
var curatedNews = []models.NewsArticle{
	{ID: "c1", Title: "GPT-5 Achieves PhD-Level Reasoning in New Benchmarks", Description: "OpenAI announces GPT-5 surpasses human PhD students on complex reasoning tasks.", Content: "The latest generation of large language models continues to push boundaries. GPT-5 reportedly uses a Mixture of Experts architecture with 16 specialized sub-networks, achieving near-perfect scores on mathematical reasoning and scientific knowledge tests.", URL: "https://openai.com/blog", Image: "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=600&h=340&fit=crop", Source: "OpenAI Blog", Category: "AI"},
	{ID: "c2", Title: "Google DeepMind Releases Gemini 2.5 Pro with Enhanced Multimodal Understanding", Description: "Gemini 2.5 Pro demonstrates state-of-the-art performance across text, image, audio, and video.", Content: "Google DeepMind has unveiled Gemini 2.5 Pro featuring real-time reasoning and novel multimodal fusion techniques that seamlessly integrate text, image, audio, and video understanding.", URL: "https://deepmind.google", Image: "https://images.unsplash.com/photo-1620712943543-bcc4688e7485?w=600&h=340&fit=crop", Source: "Google DeepMind", Category: "AI"},
	{ID: "c3", Title: "Meta Open-Sources LLaMA 4 with 405B Parameters", Description: "Meta releases its most powerful open-source LLM with novel Gated Sparse Attention.", Content: "LLaMA 4 uses a novel Gated Sparse Attention mechanism allowing it to process 128K tokens of context while using significantly less memory. Benchmarks show it matching GPT-4 Turbo.", URL: "https://ai.meta.com", Image: "https://images.unsplash.com/photo-1655720828018-edd2daec9349?w=600&h=340&fit=crop", Source: "Meta AI", Category: "DL"},
	{ID: "c4", Title: "Breakthrough in Autonomous Vehicle Safety Using Reinforcement Learning", Description: "New RL techniques reduce collision rates by 94% in simulation.", Content: "Researchers have developed novel reinforcement learning techniques that dramatically improve autonomous vehicle safety, reducing collision rates by 94% in complex urban driving simulations.", URL: "https://arxiv.org", Image: "https://images.unsplash.com/photo-1549317661-bd32c8ce0aca?w=600&h=340&fit=crop", Source: "arXiv", Category: "ML"},
	{ID: "c5", Title: "PyTorch 3.0 Released with Native Distributed Training", Description: "Built-in distributed training across thousands of GPUs with minimal code.", Content: "PyTorch 3.0 includes native support for distributed training, allowing researchers to scale their models across thousands of GPUs with just a few lines of code change.", URL: "https://pytorch.org", Image: "https://images.unsplash.com/photo-1555949963-aa79dcee981c?w=600&h=340&fit=crop", Source: "PyTorch", Category: "DL"},
	{ID: "c6", Title: "Stanford Develops Energy-Efficient Transformer Architecture", Description: "Sparse attention reduces compute by 80% while maintaining accuracy.", Content: "Stanford AI Lab has developed a new sparse attention mechanism that reduces transformer compute requirements by 80% while maintaining comparable accuracy on standard benchmarks.", URL: "https://stanford.edu", Image: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=600&h=340&fit=crop", Source: "Stanford AI Lab", Category: "DL"},
	{ID: "c7", Title: "AI Drug Discovery Identifies New Antibiotic Candidates", Description: "ML models screen millions of compounds to find promising antibiotic candidates.", Content: "Machine learning models have screened millions of chemical compounds and identified promising new antibiotic candidates that traditional methods completely missed.", URL: "https://nature.com", Image: "https://images.unsplash.com/photo-1532187863486-abf9dbad1b69?w=600&h=340&fit=crop", Source: "Nature", Category: "ML"},
	{ID: "c8", Title: "NVIDIA Announces Next-Gen AI Chips for Foundation Models", Description: "Blackwell Ultra delivers 30x improvement in AI training throughput.", Content: "NVIDIA has announced its next-generation Blackwell Ultra architecture, delivering a massive 30x improvement in AI training throughput for foundation models.", URL: "https://nvidia.com", Image: "https://images.unsplash.com/photo-1591405351990-4726e331f141?w=600&h=340&fit=crop", Source: "NVIDIA", Category: "AI"},
	{ID: "c9", Title: "Computer Vision Achieves Human-Level Medical Diagnosis", Description: "Vision transformer matches radiologist accuracy across 14 imaging tasks.", Content: "A new vision transformer model has achieved human-level accuracy in medical image diagnosis across 14 different imaging modalities, from X-rays to MRI scans.", URL: "https://thelancet.com", Image: "https://images.unsplash.com/photo-1559757175-5700dde675bc?w=600&h=340&fit=crop", Source: "The Lancet", Category: "DL"},
	{ID: "c10", Title: "Hugging Face Surpasses 1 Million Hosted Models", Description: "The AI community platform solidifies its position as the GitHub of ML.", Content: "Hugging Face has surpassed one million hosted models, cementing its role as the central hub for the machine learning community.", URL: "https://huggingface.co", Image: "https://images.unsplash.com/photo-1618401471353-b98afee0b2eb?w=600&h=340&fit=crop", Source: "Hugging Face", Category: "ML"},
	{ID: "c11", Title: "Federated Learning Enables Privacy-Preserving AI at Scale", Description: "New techniques reduce communication costs by 100x.", Content: "Advanced gradient compression techniques have made federated learning practical for billions of devices, reducing communication costs by up to 100x.", URL: "https://research.google", Image: "https://images.unsplash.com/photo-1563986768609-322da13575f2?w=600&h=340&fit=crop", Source: "Google Research", Category: "ML"},
	{ID: "c12", Title: "Real-Time 4K Video Generation with Diffusion Models", Description: "Temporal consistency maintained across thousands of frames.", Content: "A breakthrough in video generation allows real-time 4K video creation with temporal consistency, using a novel temporal attention diffusion architecture.", URL: "https://openai.com", Image: "https://images.unsplash.com/photo-1536240478700-b869070f9279?w=600&h=340&fit=crop", Source: "OpenAI", Category: "DL"},
	{ID: "c13", Title: "MIT Develops Explainable AI for Critical Decision Making", Description: "Human-readable explanations for healthcare, finance, and justice.", Content: "MIT CSAIL has developed a new XAI framework that provides clear, human-readable explanations for AI decisions in healthcare, finance, and criminal justice applications.", URL: "https://mit.edu", Image: "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=600&h=340&fit=crop", Source: "MIT CSAIL", Category: "AI"},
	{ID: "c14", Title: "Synthetic Data Now Powers 60% of Enterprise ML Models", Description: "Generative techniques eliminate privacy concerns in training data.", Content: "A comprehensive industry study reveals that 60% of enterprise ML models now incorporate synthetic data, driven by privacy regulations and the high cost of real-world data collection.", URL: "https://datascienceweekly.org", Image: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=600&h=340&fit=crop", Source: "DS Weekly", Category: "DS"},
	{ID: "c15", Title: "Graph Neural Networks Revolutionize Protein Interaction Prediction", Description: "Building on AlphaFold with unprecedented accuracy.", Content: "New GNN architectures are building on AlphaFold's legacy, predicting complex protein-protein interactions with unprecedented accuracy.", URL: "https://science.org", Image: "https://images.unsplash.com/photo-1628595351029-c2bf17511435?w=600&h=340&fit=crop", Source: "Science", Category: "DL"},
	{ID: "c16", Title: "AutoML Frameworks Handle End-to-End ML Pipelines", Description: "Automated systems match expert-designed pipelines across 40 benchmarks.", Content: "The latest AutoML frameworks can automatically handle data preprocessing, feature engineering, model selection, and hyperparameter tuning, matching expert performance.", URL: "https://kaggle.com", Image: "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=600&h=340&fit=crop", Source: "Kaggle", Category: "DS"},
	{ID: "c17", Title: "Quantum Machine Learning Shows Practical Advantage", Description: "IBM quantum processor achieves 10x speedup on specific ML tasks.", Content: "IBM has demonstrated practical quantum advantage for machine learning, achieving a 10x speedup on kernel methods and optimization problems compared to classical hardware.", URL: "https://research.ibm.com", Image: "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=600&h=340&fit=crop", Source: "IBM Research", Category: "AI"},
	{ID: "c18", Title: "Multi-Agent AI Swarms Improve Software Engineering by 40%", Description: "Specialized agents collaborate on complex tasks.", Content: "OpenAI's multi-agent framework orchestrates specialized AI agents to collaborate on complex software engineering tasks, showing 40% improvement over single-agent approaches.", URL: "https://openai.com", Image: "https://images.unsplash.com/photo-1558618666-fcd25c85f82e?w=600&h=340&fit=crop", Source: "OpenAI", Category: "AI"},
	{ID: "c19", Title: "Causal Inference Meets Deep Learning in Novel Hybrid Frameworks", Description: "Models that understand cause-and-effect relationships.", Content: "A new wave of research merges causal inference with deep learning, enabling neural networks to understand causal relationships for more robust and generalizable models.", URL: "https://arxiv.org", Image: "https://images.unsplash.com/photo-1504868584819-f8e8b4b6d7e3?w=600&h=340&fit=crop", Source: "NeurIPS", Category: "ML"},
	{ID: "c20", Title: "EU AI Act Takes Effect: What ML Engineers Need to Know", Description: "Risk-based requirements for AI systems in Europe.", Content: "The EU AI Act establishes comprehensive risk-based requirements for AI systems, creating a framework that categorizes AI applications by risk level with corresponding obligations.", URL: "https://digital-strategy.ec.europa.eu", Image: "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=600&h=340&fit=crop", Source: "European Commission", Category: "AI"},
}
