package profile

// Default is the portfolio owner's profile.
func Default() Profile {
	return Profile{
		Name:     "Andres Osorio",
		Role:     "Desarrollador Backend/Frontend (Fullstack)",
		Location: "Colombia",
		Avatar: Avatar{
			Src: "/static/avatar.svg",
			Alt: "Foto de perfil de Andres Osorio",
		},
		Summary: "Construyo productos web con React, TypeScript y buenas prácticas de UI/UX. " +
			"Me enfoco en performance, accesibilidad y una experiencia de usuario clara.",
		Languages: []Language{
			{Name: "Español", Level: "Nativo"},
			{Name: "English", Level: "Intermedio"},
		},
		Links: []Link{
			{Label: "GitHub", Href: "https://github.com/andresaoe"},
			{Label: "LinkedIn", Href: "https://www.linkedin.com/in/andresaoe"},
		},
		Studies:    studies,
		Experience: experience,
		Projects:   projects,
		Skills:     skillGroups,
		Tech:       []string{"React", "TypeScript", "Tailwind CSS", "Vite", "Supabase", "Git", "GitHub", "Vercel"},
	}
}

var studies = []Study{
	{
		Title:  "Tecnología en Sistemas de Información",
		Place:  "Institución Universitaria Antonio José Camacho",
		Period: "2009–Actualidad",
		Description: []string{
			"Ser Tecnólogo en Sistemas de Información de la UNICAMACHO es ser un experto en soluciones informáticas para las demandas actuales. Mi formación me capacita para:",
			"Me destaco en roles como desarrollador de software, analista de sistemas o administrador de bases de datos. Además, poseo habilidades comunicativas, pensamiento crítico, trabajo en equipo y responsabilidad ética. Preparado para el mundo digital, ser Tecnólogo en Sistemas de Información es un recurso valioso en cualquier entorno laboral.",
		},
		Bullets: []string{
			"Desarrollar software personalizado.",
			"Gestionar bases de datos con seguridad y eficiencia.",
			"Participar en proyectos informáticos de impacto.",
			"Administrar redes y sistemas con precisión.",
		},
		Details: []string{"Énfasis en Desarrollo Web y Móviles"},
		Diploma: &Diploma{
			Title: "Diplomado en redes Cisco CCNA",
			Description: "Profesional con diplomado en Redes Cisco CCNA, con sólidos conocimientos en fundamentos de redes, direccionamiento IP, subnetting, " +
				"enrutamiento y conmutación, así como en protocolos de red y conceptos de seguridad básica. Capaz de instalar, configurar y diagnosticar " +
				"redes LAN y WAN, garantizando conectividad, estabilidad y buen rendimiento de la infraestructura tecnológica. Con enfoque en la " +
				"resolución de problemas, buenas prácticas y adaptación a entornos empresariales.",
		},
		Badges: []Badge{
			{
				Src:       "https://images.credly.com/images/f4ccdba9-dd65-4349-baad-8f05df116443/CCNASRWE__1_.png",
				Alt:       "Insignia CCNA: Switching, Routing & Wireless Essentials",
				HowToEarn: "Completar el curso “Switching, Routing, and Wireless Essentials” de Cisco (CCNA) y obtener este credencial; incluye actividades prácticas y laboratorios (por ejemplo, con Cisco Packet Tracer).",
				Href:      "https://www.credly.com/org/cisco/badge/ccna-switching-routing-and-wireless-essentials.1",
			},
			{
				Src:       "https://developers.google.com/profile/badges/community/gdg/chapter/badge.svg",
				Alt:       "Google Developer Groups (GDG) Cali",
				HowToEarn: "Unirte a un Google Developer Group (por ejemplo, GDG Cali).",
				Href:      "https://gdg.community.dev/gdg-cali/",
			},
			{
				Src:       "https://developers.google.com/profile/badges/events/3P/SDGCPMeetup/badge.svg",
				Alt:       "Evento: SDGCP Meetup",
				HowToEarn: "Asistir al evento/meetup SDGCP Meetup (insignia de evento).",
				Href:      "https://developers.google.com/profile/badges/events/3P/SDGCPMeetup/badge.svg",
			},
			{
				Src:       "https://developers.google.com/profile/badges/community/build-with-ai/2025/workshop-attendee/badge.svg",
				Alt:       "Build with AI 2025: Workshop Attendee",
				HowToEarn: "Asistir a un evento o taller de la serie Build with AI 2025.",
				Href:      "https://developers.google.com/profile/badges/community/build-with-ai/2025/workshop-attendee/badge.svg",
			},
			{
				Src:       "https://developers.google.com/profile/badges/playlists/android/android-enterprise-build-apps/badge.svg",
				Alt:       "Android: Android Enterprise (Build Apps)",
				HowToEarn: "Completar la ruta de aprendizaje “Build enterprise apps on Android” y su quiz asociado.",
				Href:      "https://developers.google.com/profile/badges/playlists/android/android-enterprise-build-apps/badge.svg",
			},
			{
				Src:       "https://developers.google.com/profile/badges/community/dsc/2021/core_member/badge.svg",
				Alt:       "DSC 2021: Core Member",
				HowToEarn: "Ser parte del core team de un Google Developer Student Club (GDSC) en 2021–2022.",
				Href:      "https://developers.google.com/profile/badges/community/dsc/2021/core_member/badge.svg",
				Frame:     FramePurple,
			},
			{
				Src:       "/static/microsoft-certified-associate-badge.svg",
				Alt:       "Microsoft Certified: Associate",
				HowToEarn: "Obtener una certificación Microsoft Certified de nivel Associate, aprobando el/los exámenes requeridos para esa certificación específica.",
				Href:      "https://learn.microsoft.com/en-us/credentials/",
				Frame:     FrameBlue,
			},
			{
				Src:       "/static/microsoft-certified-fundamentals-badge.svg",
				Alt:       "Microsoft Certified: Fundamentals",
				HowToEarn: "Obtener una certificación Microsoft Certified Fundamentals, aprobando un examen de nivel Fundamentals correspondiente a la certificación elegida.",
				Href:      "https://learn.microsoft.com/en-us/credentials/",
				Frame:     FrameBlue,
			},
			{
				Src:       "/static/microsoft-certified-specialty-badge.svg",
				Alt:       "Microsoft Certified: Specialty",
				HowToEarn: "Obtener una certificación Microsoft Certified de nivel Specialty, aprobando el examen requerido para una certificación de especialidad específica.",
				Href:      "https://learn.microsoft.com/en-us/credentials/",
				Frame:     FrameBlue,
			},
		},
	},
	{
		Title:  "Cursos",
		Place:  "Platzi / NetAcad / Microsoft Learn",
		Period: "2023–2025",
		Details: []string{
			"2025 · Curso de Lovable AI para crear páginas web (Platzi).",
			"2024 · Curso de Fundamentos de Python (NetAcad).",
			"2024 · Curso de Redes en Cisco Packet Tracer (NetAcad).",
			"2023 · Curso de Servicios en la nube de Azure (Microsoft Learn).",
			"2023 · Curso de programación básica (Platzi).",
		},
	},
}

var experience = []Experience{
	{
		Role:   "Freelance / Independiente",
		Period: "2009-Actualidad",
		Summary: "Soy desarrollador web con formación en Tecnologías en Sistemas de Información desde 2009 y experiencia continua trabajando de manera " +
			"independiente/freelance en el diseño, desarrollo y mantenimiento de aplicaciones web. He sido testigo y partícipe de la evolución del " +
			"desarrollo web, desde arquitecturas tradicionales hasta enfoques modernos, aplicando tecnologías frontend y backend, gestión de bases de " +
			"datos y buenas prácticas de programación. Complemento mi experiencia con formación constante a través de Platzi, Microsoft Learn, Azure y " +
			"Cisco Networking Academy, fortaleciendo conocimientos en desarrollo web moderno, servicios en la nube, redes y seguridad. Me enfoco en " +
			"crear soluciones web funcionales, escalables y orientadas al rendimiento, adaptadas a las necesidades del negocio y del usuario final.",
	},
}

var projects = []Project{
	{
		Name: "Control de Nómina by @andresaoe",
		Description: "Este proyecto web es un dashboard tipo panel de control orientado a la gestión de nómina, es decir, a visualizar y administrar " +
			"datos relacionados con mis pagos, mi información laboral y posiblemente el cálculo de salarios o seguimiento de períodos de pago, " +
			"reportes mensuales y anuales, entre otras funciones.",
		Href: "https://github.com/andresaoe/nomina_andresaoe",
		Tags: []string{"React", "TypeScript", "Supabase", "Vercel"},
	},
	{
		Name: "Control de Nómina: andresaoe",
		Description: "Este proyecto web es un dashboard tipo panel de control personal para el control de nómina, diseñada para registrar los días " +
			"trabajados, las horas laboradas y los diferentes recargos (nocturnos, dominicales, festivos, etc.) calculando así un salario y sus reportes.",
		Href: "https://github.com/andresaoe/mi-jornada-calculada",
		Tags: []string{"Tailwind", "UI", "Lovable AI", "Google dev"},
	},
}

var skillGroups = []SkillGroup{
	{Title: "Lenguajes", Items: []string{"HTML", "CSS", "JavaScript", "TypeScript", "PHP", "SQL"}},
	{Title: "Frontend", Items: []string{"React", "Next.js", "Vite", "Tailwind CSS", "Sass", "Bootstrap", "jQuery"}},
	{Title: "Backend y APIs", Items: []string{"Node.js", "Express", "REST APIs", "GraphQL"}},
	{Title: "Bases de datos", Items: []string{"Supabase", "PostgreSQL", "MySQL", "MongoDB", "SQLite"}},
	{Title: "Deploy y DevOps", Items: []string{"Vercel", "Netlify", "Docker", "GitHub Actions", "Nginx", "Apache", "CI/CD"}},
	{Title: "Inteligencias artificiales", Items: []string{"Trae AI", "ChatGPT", "Claude", "GitHub Copilot", "Gemini", "Perplexity", "Cursor"}},
	{Title: "Desarrollo móvil", Items: []string{
		"Android Studio", "NetBeans IDE", "Xcode", "Flutter", "Dart", "Kotlin", "Swift", "React Native", "Expo", "Firebase", "Gradle",
	}},
	{Title: "IDEs y herramientas", Items: []string{
		"Git", "GitHub", "VS Code", "Trae IDE", "Sublime Text", "Azure", "Amazon", "Blogger", "Postman", "Figma", "ESLint",
		"Prettier", "Jest", "Vitest", "Cypress", "Playwright", "npm", "pnpm", "Yarn", "WordPress", "cPanel",
	}},
	{Title: "Sistemas operativos", Items: []string{"Windows", "Linux", "macOS", "Android"}},
}
