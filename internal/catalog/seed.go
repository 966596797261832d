package catalog

// defaultServices is the built-in catalog used when the startup feed supplies
// no services.
var defaultServices = []Service{
	{
		ID:          "svc_boarding",
		Name:        Text{EN: "Hotel (Boarding)", ES: "Hotel (Hospedaje)"},
		Description: Text{EN: "Overnight stays in individual climate-controlled suites with daily supervised play.", ES: "Estancias nocturnas en suites individuales con clima controlado y juego supervisado diario."},
		Type:        "boarding",
		Price:       "$350 MXN / night",
		Duration:    "Per night",
		Image:       "images/services/boarding.jpg",
	},
	{
		ID:          "svc_daycare",
		Name:        Text{EN: "Daycare", ES: "Guardería"},
		Description: Text{EN: "Full-day care with group play sessions, rest periods, and individual attention.", ES: "Cuidado de día completo con sesiones de juego en grupo, períodos de descanso y atención individual."},
		Type:        "daycare",
		Price:       "$200 MXN / day",
		Duration:    "Per day",
		Image:       "images/services/daycare.jpg",
	},
	{
		ID:          "svc_grooming",
		Name:        Text{EN: "Grooming", ES: "Estética"},
		Description: Text{EN: "Bath, brush, trim, and nail care for all breeds and sizes.", ES: "Baño, cepillado, corte y cuidado de uñas para todas las razas y tamaños."},
		Type:        "grooming",
		Price:       "From $250 MXN",
		Duration:    "1-2 hours",
		Image:       "images/services/grooming.jpg",
	},
	{
		ID:          "svc_spa",
		Name:        Text{EN: "Spa Day", ES: "Día de Spa"},
		Description: Text{EN: "Full spa treatment: aromatherapy bath, deep conditioning, massage, and pawdicure.", ES: "Tratamiento de spa completo: baño de aromaterapia, acondicionamiento profundo, masaje y pedicura."},
		Type:        "spa",
		Price:       "From $450 MXN",
		Duration:    "3 hours",
		Image:       "images/services/spa.jpg",
	},
	{
		ID:          "svc_relocation",
		Name:        Text{EN: "Relocation", ES: "Reubicación"},
		Description: Text{EN: "Door-to-door pet relocation assistance, paperwork included. Quoted individually.", ES: "Asistencia de reubicación de mascotas puerta a puerta, papeleo incluido. Cotizado individualmente."},
		Type:        "relocation",
		Price:       "Quoted individually",
		Duration:    "Varies",
		Image:       "images/services/relocation.jpg",
	},
	{
		ID:          "svc_transport",
		Name:        Text{EN: "Transport", ES: "Transporte"},
		Description: Text{EN: "Safe pick-up and drop-off within the city in climate-controlled vehicles.", ES: "Recogida y entrega segura dentro de la ciudad en vehículos con clima controlado."},
		Type:        "transport",
		Price:       "From $100 MXN",
		Duration:    "Varies",
		Image:       "images/services/transport.jpg",
	},
}

// defaultKnowledge returns the built-in bilingual FAQ set used when the
// startup feed supplies no knowledge items.
func defaultKnowledge() []KnowledgeItem {
	out := make([]KnowledgeItem, 0, 64)
	out = append(out, generalFAQs...)
	out = append(out, serviceFAQs...)
	out = append(out, healthFAQs...)
	out = append(out, specialNeedsFAQs...)
	out = append(out, comfortFAQs...)
	out = append(out, facilitiesFAQs...)
	out = append(out, logisticsFAQs...)
	return out
}

var generalFAQs = []KnowledgeItem{
	{
		ID:        "faq_hours_en",
		Lang:      "en",
		Questions: []string{"What are your hours?", "When are you open?", "opening schedule"},
		Answer:    "We are open for reception from 8:00 AM to 6:00 PM, Monday through Saturday. Please contact us to confirm specific drop-off and pick-up times.",
		Category:  "hours",
	},
	{
		ID:        "faq_hours_es",
		Lang:      "es",
		Questions: []string{"¿Cuál es su horario?", "¿Cuándo abren?", "horario"},
		Answer:    "Estamos abiertos para recepción de 8:00 AM a 6:00 PM, de lunes a sábado. Por favor contáctenos para confirmar horarios específicos de entrega y recogida.",
		Category:  "hours",
	},
	{
		ID:        "faq_location_en",
		Lang:      "en",
		Questions: []string{"Where are you located?", "address", "directions"},
		Answer:    "We are located at Teniente Juan de la Barrera 503, Colonia Héroes 20190 Aguascalientes, Mexico.",
		Category:  "general",
	},
	{
		ID:        "faq_location_es",
		Lang:      "es",
		Questions: []string{"¿Dónde están ubicados?", "dirección", "ubicación"},
		Answer:    "Estamos ubicados en Teniente Juan de la Barrera 503, Colonia Héroes 20190 Aguascalientes, México.",
		Category:  "general",
	},
	{
		ID:        "faq_contact_en",
		Lang:      "en",
		Questions: []string{"phone number", "email", "contact"},
		Answer:    "You can reach us at +52 449 448 5486 (WhatsApp) or email hotelmadagascarags@gmail.com.",
		Category:  "general",
	},
	{
		ID:        "faq_contact_es",
		Lang:      "es",
		Questions: []string{"teléfono", "correo", "contacto"},
		Answer:    "Puede contactarnos al +52 449 448 5486 (WhatsApp) o al correo hotelmadagascarags@gmail.com.",
		Category:  "general",
	},
	{
		ID:        "faq_included_en",
		Lang:      "en",
		Questions: []string{"what is included?", "what do you offer?"},
		Answer:    "Our services include love, care, spacious play areas, individual rooms, and professional attention.",
		Category:  "services",
	},
	{
		ID:        "faq_included_es",
		Lang:      "es",
		Questions: []string{"¿qué incluye?", "¿qué ofrecen?"},
		Answer:    "Nuestros servicios incluyen amor, cuidado, amplia área de juegos, cuartos individuales y atención profesional.",
		Category:  "services",
	},
}

var serviceFAQs = []KnowledgeItem{
	{
		ID:        "faq_grooming_breeds_en",
		Lang:      "en",
		Questions: []string{"grooming for large breeds", "do you groom large dogs", "groom big dogs"},
		Answer:    "Yes! Our full grooming service covers all breeds and sizes, including large and giant breeds. Bath, brush, trim, and nail care are all included.",
		Category:  "services",
		Tags:      []string{"grooming", "breeds", "large"},
	},
	{
		ID:        "faq_grooming_breeds_es",
		Lang:      "es",
		Questions: []string{"estética para razas grandes", "bañan perros grandes"},
		Answer:    "¡Sí! Nuestro servicio completo de estética cubre todas las razas y tamaños, incluyendo razas grandes y gigantes. Baño, cepillado, corte y cuidado de uñas están incluidos.",
		Category:  "services",
		Tags:      []string{"estética", "razas", "grandes"},
	},
	{
		ID:        "faq_spa_duration_en",
		Lang:      "en",
		Questions: []string{"how long is a full spa treatment", "spa duration", "spa day length"},
		Answer:    "A full spa treatment takes about 3 hours: aromatherapy bath, deep conditioning, massage, and pawdicure. Your pet leaves relaxed and smelling wonderful!",
		Category:  "services",
		Tags:      []string{"spa", "duration", "treatment"},
	},
	{
		ID:        "faq_spa_duration_es",
		Lang:      "es",
		Questions: []string{"cuánto dura el tratamiento de spa", "duración del spa"},
		Answer:    "Un tratamiento de spa completo toma aproximadamente 3 horas: baño de aromaterapia, acondicionamiento profundo, masaje y pedicura. ¡Su mascota sale relajada y oliendo maravilloso!",
		Category:  "services",
		Tags:      []string{"spa", "duración", "tratamiento"},
	},
	{
		ID:        "faq_scent_allergy_en",
		Lang:      "en",
		Questions: []string{"my dog is sensitive to perfumes", "scent allergies", "product allergy", "sensitive skin"},
		Answer:    "We only use hypoallergenic, fragrance-free products for pets with sensitivities. Let us know about any allergies when booking and we will note it on your pet's file.",
		Category:  "health",
		Tags:      []string{"allergy", "perfume", "sensitive", "hypoallergenic"},
	},
	{
		ID:        "faq_scent_allergy_es",
		Lang:      "es",
		Questions: []string{"mi perro es sensible a los perfumes", "alergias a aromas", "piel sensible"},
		Answer:    "Solo usamos productos hipoalergénicos y sin fragancia para mascotas con sensibilidades. Infórmenos sobre cualquier alergia al reservar y lo anotaremos en el expediente de su mascota.",
		Category:  "health",
		Tags:      []string{"alergia", "perfume", "sensible", "hipoalergénico"},
	},
}

var healthFAQs = []KnowledgeItem{
	{
		ID:        "faq_vaccinations_required_en",
		Lang:      "en",
		Questions: []string{"what vaccinations are required", "vaccine requirements", "vaccination policy", "do I need rabies vaccine", "required shots", "immunization needed"},
		Answer:    "We require all pets to be up-to-date on core vaccinations: Rabies, DHPP (Distemper, Hepatitis, Parvovirus, Parainfluenza) for dogs or FVRCP for cats, and Bordetella (kennel cough). Please bring vaccination records or your vet's contact information.",
		Category:  "health",
		Tags:      []string{"vaccinations", "requirements", "health", "safety"},
	},
	{
		ID:        "faq_vaccinations_required_es",
		Lang:      "es",
		Questions: []string{"qué vacunas se requieren", "requisitos de vacunación", "política de vacunas", "necesito vacuna de rabia", "vacunas requeridas", "inmunización necesaria"},
		Answer:    "Requerimos que todas las mascotas estén al día con las vacunas principales: Rabia, DHPP (Distemper, Hepatitis, Parvovirus, Parainfluenza) para perros o FVRCP para gatos, y Bordetella (tos de las perreras). Por favor traiga los registros de vacunación o la información de contacto de su veterinario.",
		Category:  "health",
		Tags:      []string{"vacunas", "requisitos", "salud", "seguridad"},
	},
	{
		ID:        "faq_flea_tick_en",
		Lang:      "en",
		Questions: []string{"flea treatment", "tick prevention", "parasite control", "flea and tick required"},
		Answer:    "All pets must be on current flea and tick prevention. We inspect all pets upon arrival and reserve the right to administer treatment if needed (at owner's expense).",
		Category:  "health",
		Tags:      []string{"fleas", "ticks", "parasites", "health"},
	},
	{
		ID:        "faq_flea_tick_es",
		Lang:      "es",
		Questions: []string{"tratamiento de pulgas", "prevención de garrapatas", "control de parásitos", "pulgas y garrapatas requerido"},
		Answer:    "Todas las mascotas deben tener prevención actual contra pulgas y garrapatas. Inspeccionamos todas las mascotas al llegar y nos reservamos el derecho de administrar tratamiento si es necesario (a expensas del dueño).",
		Category:  "health",
		Tags:      []string{"pulgas", "garrapatas", "parásitos", "salud"},
	},
	{
		ID:        "faq_sick_pet_en",
		Lang:      "en",
		Questions: []string{"what if my pet gets sick", "emergency procedures", "pet becomes ill", "medical emergency"},
		Answer:    "If your pet becomes ill, we will contact you immediately. We have a veterinarian on-call 24/7. Emergency medical care will be provided, and you will be contacted before any major procedures. All emergency care costs are the owner's responsibility.",
		Category:  "health",
		Tags:      []string{"emergency", "illness", "veterinary", "medical"},
	},
	{
		ID:        "faq_sick_pet_es",
		Lang:      "es",
		Questions: []string{"qué pasa si mi mascota se enferma", "procedimientos de emergencia", "mascota se enferma", "emergencia médica"},
		Answer:    "Si su mascota se enferma, nos comunicaremos con usted de inmediato. Tenemos un veterinario disponible las 24 horas. Se proporcionará atención médica de emergencia y se le contactará antes de cualquier procedimiento importante. Todos los costos de atención de emergencia son responsabilidad del dueño.",
		Category:  "health",
		Tags:      []string{"emergencia", "enfermedad", "veterinario", "médico"},
	},
}

var specialNeedsFAQs = []KnowledgeItem{
	{
		ID:        "faq_medication_admin_en",
		Lang:      "en",
		Questions: []string{"can you give medication", "administer medicine", "my pet needs medication", "pills for my dog"},
		Answer:    "Yes, we can administer oral medications at no extra charge. Please provide detailed written instructions, the medication in its original container with dosage clearly labeled, and your vet's contact information.",
		Category:  "special_needs",
		Tags:      []string{"medication", "medicine", "pills", "medical"},
	},
	{
		ID:        "faq_medication_admin_es",
		Lang:      "es",
		Questions: []string{"pueden dar medicamentos", "administrar medicina", "mi mascota necesita medicamento", "pastillas para mi perro"},
		Answer:    "Sí, podemos administrar medicamentos orales sin cargo adicional. Por favor proporcione instrucciones escritas detalladas, el medicamento en su envase original con la dosis claramente etiquetada, y la información de contacto de su veterinario.",
		Category:  "special_needs",
		Tags:      []string{"medicamentos", "medicina", "pastillas", "médico"},
	},
	{
		ID:        "faq_dietary_restrictions_en",
		Lang:      "en",
		Questions: []string{"special diet", "food allergies", "dietary restrictions", "can I bring my own food", "grain free food"},
		Answer:    "We accommodate all dietary needs! You're welcome to bring your pet's regular food to avoid digestive upset. Please provide clear feeding instructions including portion sizes and meal times. We can also handle special diets for allergies or medical conditions.",
		Category:  "special_needs",
		Tags:      []string{"diet", "food", "allergies", "nutrition"},
	},
	{
		ID:        "faq_dietary_restrictions_es",
		Lang:      "es",
		Questions: []string{"dieta especial", "alergias alimentarias", "restricciones dietéticas", "puedo traer mi propia comida", "comida sin granos"},
		Answer:    "¡Acomodamos todas las necesidades dietéticas! Puede traer la comida regular de su mascota para evitar malestar digestivo. Por favor proporcione instrucciones claras de alimentación incluyendo tamaños de porción y horarios de comida. También podemos manejar dietas especiales por alergias o condiciones médicas.",
		Category:  "special_needs",
		Tags:      []string{"dieta", "comida", "alergias", "nutrición"},
	},
	{
		ID:        "faq_behavioral_issues_en",
		Lang:      "en",
		Questions: []string{"my dog is aggressive", "doesn't like other dogs", "behavioral problems", "anxious pet", "reactive dog"},
		Answer:    "Please be transparent about any behavioral issues. We have experience with anxious, reactive, or aggressive pets and can arrange private sessions away from group play. Our staff is trained in handling behavioral challenges safely.",
		Category:  "special_needs",
		Tags:      []string{"behavior", "aggression", "anxiety", "training"},
	},
	{
		ID:        "faq_behavioral_issues_es",
		Lang:      "es",
		Questions: []string{"mi perro es agresivo", "no le gustan otros perros", "problemas de comportamiento", "mascota ansiosa", "perro reactivo"},
		Answer:    "Por favor sea transparente sobre cualquier problema de comportamiento. Tenemos experiencia con mascotas ansiosas, reactivas o agresivas y podemos organizar sesiones privadas separadas del juego en grupo. Nuestro personal está capacitado para manejar desafíos de comportamiento de forma segura.",
		Category:  "special_needs",
		Tags:      []string{"comportamiento", "agresión", "ansiedad", "entrenamiento"},
	},
	{
		ID:        "faq_senior_pets_en",
		Lang:      "en",
		Questions: []string{"senior dog care", "elderly pet", "old cat boarding", "special needs for senior pets"},
		Answer:    "We love senior pets! We provide extra comfortable bedding, easier access accommodations, gentler play sessions, and more frequent checkups. Please inform us of any mobility issues, medical conditions, or special care requirements.",
		Category:  "special_needs",
		Tags:      []string{"senior", "elderly", "geriatric", "special care"},
	},
	{
		ID:        "faq_senior_pets_es",
		Lang:      "es",
		Questions: []string{"cuidado de perro senior", "mascota anciana", "hospedaje de gato viejo", "necesidades especiales para mascotas senior"},
		Answer:    "¡Amamos a las mascotas senior! Proporcionamos ropa de cama extra cómoda, acomodaciones de acceso más fácil, sesiones de juego más suaves y chequeos más frecuentes. Por favor infórmenos de cualquier problema de movilidad, condiciones médicas o requisitos de cuidado especial.",
		Category:  "special_needs",
		Tags:      []string{"senior", "anciano", "geriátrico", "cuidado especial"},
	},
	{
		ID:        "faq_puppy_care_en",
		Lang:      "en",
		Questions: []string{"can I board a puppy", "young dog", "puppy boarding", "how old does my dog need to be"},
		Answer:    "We accept puppies 4 months and older who have completed their vaccination series. Young pets require extra attention and potty breaks - we provide age-appropriate care, socialization, and training reinforcement.",
		Category:  "special_needs",
		Tags:      []string{"puppy", "young", "age", "training"},
	},
	{
		ID:        "faq_puppy_care_es",
		Lang:      "es",
		Questions: []string{"puedo hospedar un cachorro", "perro joven", "hospedaje de cachorro", "qué edad debe tener mi perro"},
		Answer:    "Aceptamos cachorros de 4 meses en adelante que hayan completado su serie de vacunación. Las mascotas jóvenes requieren atención extra y descansos para ir al baño - proporcionamos cuidado apropiado para la edad, socialización y refuerzo de entrenamiento.",
		Category:  "special_needs",
		Tags:      []string{"cachorro", "joven", "edad", "entrenamiento"},
	},
}

var comfortFAQs = []KnowledgeItem{
	{
		ID:        "faq_first_time_en",
		Lang:      "en",
		Questions: []string{"first time boarding", "never boarded before", "what to expect", "preparing for first stay", "first visit"},
		Answer:    "First time boarding? We recommend a trial visit to familiarize your pet with our facility. Bring familiar items (favorite toy, blanket with your scent). We'll provide extra attention and regular updates. Most pets adjust within 24 hours!",
		Category:  "comfort",
		Tags:      []string{"first time", "introduction", "trial", "new"},
	},
	{
		ID:        "faq_first_time_es",
		Lang:      "es",
		Questions: []string{"primer hospedaje", "nunca ha estado hospedado", "qué esperar", "preparación para primera estadía", "primera visita"},
		Answer:    "¿Primer hospedaje? Recomendamos una visita de prueba para familiarizar a su mascota con nuestras instalaciones. Traiga artículos familiares (juguete favorito, manta con su olor). Proporcionaremos atención extra y actualizaciones regulares. ¡La mayoría de las mascotas se adaptan en 24 horas!",
		Category:  "comfort",
		Tags:      []string{"primera vez", "introducción", "prueba", "nuevo"},
	},
	{
		ID:        "faq_separation_anxiety_en",
		Lang:      "en",
		Questions: []string{"separation anxiety", "pet is anxious", "worried about leaving my dog", "my dog has anxiety", "stressed pet"},
		Answer:    "Separation anxiety is common. We help by: keeping your pet engaged with activities, providing familiar items from home, maintaining consistent routines, offering extra comfort and attention, and sending you photo updates. Keep drop-offs brief and upbeat!",
		Category:  "comfort",
		Tags:      []string{"anxiety", "separation", "stress", "comfort"},
	},
	{
		ID:        "faq_separation_anxiety_es",
		Lang:      "es",
		Questions: []string{"ansiedad por separación", "mascota ansiosa", "preocupado por dejar a mi perro", "mi perro tiene ansiedad", "mascota estresada"},
		Answer:    "La ansiedad por separación es común. Ayudamos: manteniendo a su mascota ocupada con actividades, proporcionando artículos familiares de casa, manteniendo rutinas consistentes, ofreciendo extra comodidad y atención, y enviándole actualizaciones con fotos. ¡Mantenga las entregas breves y alegres!",
		Category:  "comfort",
		Tags:      []string{"ansiedad", "separación", "estrés", "comodidad"},
	},
	{
		ID:        "faq_bring_items_en",
		Lang:      "en",
		Questions: []string{"what should I bring", "can I bring toys", "bring blanket from home", "familiar items", "what to pack"},
		Answer:    "Please bring: your pet's regular food, any medications, vaccination records, favorite toy or blanket, and emergency contact info. Label everything with your pet's name. We provide bowls, bedding, and toys, but familiar items help comfort!",
		Category:  "comfort",
		Tags:      []string{"items", "packing", "belongings", "comfort"},
	},
	{
		ID:        "faq_bring_items_es",
		Lang:      "es",
		Questions: []string{"qué debo traer", "puedo traer juguetes", "traer manta de casa", "artículos familiares", "qué empacar"},
		Answer:    "Por favor traiga: la comida regular de su mascota, cualquier medicamento, registros de vacunación, juguete o manta favorita, e información de contacto de emergencia. Etiquete todo con el nombre de su mascota. Proporcionamos tazones, ropa de cama y juguetes, pero ¡los artículos familiares ayudan a dar comodidad!",
		Category:  "comfort",
		Tags:      []string{"artículos", "empaque", "pertenencias", "comodidad"},
	},
	{
		ID:        "faq_updates_photos_en",
		Lang:      "en",
		Questions: []string{"can I get updates", "will you send photos", "how do I know my pet is okay", "pictures of my dog", "pet cam"},
		Answer:    "We provide regular updates! We're happy to send photos via WhatsApp or email. You can also call anytime during business hours to check on your pet. Many owners find this helps ease their own separation anxiety!",
		Category:  "comfort",
		Tags:      []string{"updates", "photos", "communication", "monitoring"},
	},
	{
		ID:        "faq_updates_photos_es",
		Lang:      "es",
		Questions: []string{"puedo recibir actualizaciones", "enviarán fotos", "cómo sé que mi mascota está bien", "fotos de mi perro", "cámara de mascotas"},
		Answer:    "¡Proporcionamos actualizaciones regulares! Con gusto enviaremos fotos vía WhatsApp o correo electrónico. También puede llamar en cualquier momento durante el horario comercial para verificar a su mascota. ¡Muchos dueños encuentran que esto ayuda a aliviar su propia ansiedad por separación!",
		Category:  "comfort",
		Tags:      []string{"actualizaciones", "fotos", "comunicación", "monitoreo"},
	},
	{
		ID:        "faq_daily_routine_en",
		Lang:      "en",
		Questions: []string{"what is the daily schedule", "daily routine", "what does my pet do all day", "activities"},
		Answer:    "Daily routine includes: morning feeding and potty breaks, supervised play sessions (2-3 times daily), individual attention from staff, rest periods in comfortable suites, evening feeding, and bedtime routine. We adapt to your pet's energy level and preferences!",
		Category:  "comfort",
		Tags:      []string{"routine", "schedule", "activities", "day"},
	},
	{
		ID:        "faq_daily_routine_es",
		Lang:      "es",
		Questions: []string{"cuál es el horario diario", "rutina diaria", "qué hace mi mascota todo el día", "actividades"},
		Answer:    "La rutina diaria incluye: alimentación matutina y descansos para ir al baño, sesiones de juego supervisadas (2-3 veces al día), atención individual del personal, períodos de descanso en suites cómodas, alimentación vespertina, y rutina de hora de dormir. ¡Nos adaptamos al nivel de energía y preferencias de su mascota!",
		Category:  "comfort",
		Tags:      []string{"rutina", "horario", "actividades", "día"},
	},
}

var facilitiesFAQs = []KnowledgeItem{
	{
		ID:        "faq_facility_tour_en",
		Lang:      "en",
		Questions: []string{"can I tour the facility", "visit before booking", "see the place", "tour your hotel"},
		Answer:    "Absolutely! We encourage facility tours. Please call ahead to schedule a visit so we can give you our full attention. You'll see our play areas, suites, and meet our staff. This also helps your pet become familiar with us!",
		Category:  "facilities",
		Tags:      []string{"tour", "visit", "facility", "inspection"},
	},
	{
		ID:        "faq_facility_tour_es",
		Lang:      "es",
		Questions: []string{"puedo hacer un tour de las instalaciones", "visitar antes de reservar", "ver el lugar", "tour de su hotel"},
		Answer:    "¡Absolutamente! Animamos los tours de las instalaciones. Por favor llame con anticipación para programar una visita para que podamos darle nuestra atención completa. Verá nuestras áreas de juego, suites y conocerá a nuestro personal. ¡Esto también ayuda a su mascota a familiarizarse con nosotros!",
		Category:  "facilities",
		Tags:      []string{"tour", "visita", "instalaciones", "inspección"},
	},
	{
		ID:        "faq_cleanliness_en",
		Lang:      "en",
		Questions: []string{"how often do you clean", "cleanliness", "sanitation", "disinfect", "hygiene"},
		Answer:    "We maintain strict cleanliness standards. Suites are cleaned and disinfected daily, play areas are cleaned multiple times per day, and all surfaces are sanitized with pet-safe products. We inspect facilities throughout the day to ensure pristine conditions.",
		Category:  "facilities",
		Tags:      []string{"cleaning", "sanitation", "hygiene", "safety"},
	},
	{
		ID:        "faq_cleanliness_es",
		Lang:      "es",
		Questions: []string{"con qué frecuencia limpian", "limpieza", "saneamiento", "desinfectar", "higiene"},
		Answer:    "Mantenemos estándares estrictos de limpieza. Las suites se limpian y desinfectan diariamente, las áreas de juego se limpian varias veces al día, y todas las superficies se sanitizan con productos seguros para mascotas. Inspeccionamos las instalaciones durante todo el día para asegurar condiciones prístinas.",
		Category:  "facilities",
		Tags:      []string{"limpieza", "saneamiento", "higiene", "seguridad"},
	},
	{
		ID:        "faq_climate_control_en",
		Lang:      "en",
		Questions: []string{"air conditioning", "temperature controlled", "climate control", "heating and cooling"},
		Answer:    "All our facilities are climate-controlled year-round to ensure your pet's comfort. We maintain optimal temperature and ventilation to keep pets comfortable regardless of weather conditions.",
		Category:  "facilities",
		Tags:      []string{"temperature", "climate", "comfort", "air conditioning"},
	},
	{
		ID:        "faq_climate_control_es",
		Lang:      "es",
		Questions: []string{"aire acondicionado", "temperatura controlada", "control de clima", "calefacción y enfriamiento"},
		Answer:    "Todas nuestras instalaciones tienen control de clima durante todo el año para asegurar la comodidad de su mascota. Mantenemos temperatura y ventilación óptimas para mantener a las mascotas cómodas independientemente de las condiciones climáticas.",
		Category:  "facilities",
		Tags:      []string{"temperatura", "clima", "comodidad", "aire acondicionado"},
	},
	{
		ID:        "faq_safety_measures_en",
		Lang:      "en",
		Questions: []string{"safety protocols", "security measures", "is it safe", "safety procedures"},
		Answer:    "Safety is our top priority. We have: secure fencing, 24/7 monitoring, trained staff always on duty, regular health checks, separated play groups by size/temperament, emergency procedures in place, and veterinary support on-call.",
		Category:  "facilities",
		Tags:      []string{"safety", "security", "protocols", "monitoring"},
	},
	{
		ID:        "faq_safety_measures_es",
		Lang:      "es",
		Questions: []string{"protocolos de seguridad", "medidas de seguridad", "es seguro", "procedimientos de seguridad"},
		Answer:    "La seguridad es nuestra máxima prioridad. Tenemos: cercado seguro, monitoreo 24/7, personal capacitado siempre de guardia, chequeos de salud regulares, grupos de juego separados por tamaño/temperamento, procedimientos de emergencia establecidos, y apoyo veterinario disponible.",
		Category:  "facilities",
		Tags:      []string{"seguridad", "protección", "protocolos", "monitoreo"},
	},
	{
		ID:        "faq_play_groups_en",
		Lang:      "en",
		Questions: []string{"do pets play together", "socialization", "group play", "play with other dogs"},
		Answer:    "We offer supervised group play for social pets! Dogs are grouped by size, age, and play style. All play is closely supervised by trained staff. If your pet prefers solo time or doesn't do well with others, we provide individual play and attention instead.",
		Category:  "facilities",
		Tags:      []string{"socialization", "play", "groups", "activities"},
	},
	{
		ID:        "faq_play_groups_es",
		Lang:      "es",
		Questions: []string{"las mascotas juegan juntas", "socialización", "juego en grupo", "jugar con otros perros"},
		Answer:    "¡Ofrecemos juego en grupo supervisado para mascotas sociales! Los perros se agrupan por tamaño, edad y estilo de juego. Todo el juego es supervisado de cerca por personal capacitado. Si su mascota prefiere tiempo a solas o no se lleva bien con otros, proporcionamos juego y atención individual en su lugar.",
		Category:  "facilities",
		Tags:      []string{"socialización", "juego", "grupos", "actividades"},
	},
}

var logisticsFAQs = []KnowledgeItem{
	{
		ID:        "faq_checkin_checkout_en",
		Lang:      "en",
		Questions: []string{"check-in time", "drop off time", "pick up hours", "checkout time", "when can I drop off"},
		Answer:    "Check-in is available during our reception hours. Please contact us to confirm specific drop-off and pick-up times that work best for your schedule. We're flexible to accommodate your needs!",
		Category:  "logistics",
		Tags:      []string{"check-in", "checkout", "hours", "schedule"},
	},
	{
		ID:        "faq_checkin_checkout_es",
		Lang:      "es",
		Questions: []string{"hora de registro", "hora de entrega", "horario de recogida", "hora de salida", "cuándo puedo dejar"},
		Answer:    "El registro está disponible durante nuestro horario de recepción. Por favor contáctenos para confirmar horarios específicos de entrega y recogida que funcionen mejor para su horario. ¡Somos flexibles para acomodar sus necesidades!",
		Category:  "logistics",
		Tags:      []string{"registro", "salida", "horario", "programación"},
	},
	{
		ID:        "faq_holiday_booking_en",
		Lang:      "en",
		Questions: []string{"holiday availability", "Christmas booking", "book for holidays", "how far in advance"},
		Answer:    "Holidays fill up quickly! We recommend booking at least 2-3 weeks in advance for regular dates, and 1-2 months ahead for major holidays (Christmas, Easter, summer vacation season). Early booking ensures we can accommodate your pet!",
		Category:  "logistics",
		Tags:      []string{"holidays", "booking", "advance", "availability"},
	},
	{
		ID:        "faq_holiday_booking_es",
		Lang:      "es",
		Questions: []string{"disponibilidad de vacaciones", "reserva de Navidad", "reservar para vacaciones", "con cuánta anticipación"},
		Answer:    "¡Las vacaciones se llenan rápidamente! Recomendamos reservar con al menos 2-3 semanas de anticipación para fechas regulares, y 1-2 meses adelante para vacaciones importantes (Navidad, Semana Santa, temporada de vacaciones de verano). ¡La reserva temprana asegura que podamos acomodar a su mascota!",
		Category:  "logistics",
		Tags:      []string{"vacaciones", "reserva", "anticipación", "disponibilidad"},
	},
	{
		ID:        "faq_cancellation_en",
		Lang:      "en",
		Questions: []string{"cancellation policy", "can I cancel", "refund policy", "change my reservation"},
		Answer:    "We understand plans change! Please notify us as soon as possible if you need to cancel or modify your reservation. We appreciate at least 24 hours before your scheduled date for cancellations. Contact us to discuss your specific situation.",
		Category:  "logistics",
		Tags:      []string{"cancellation", "refund", "policy", "changes"},
	},
	{
		ID:        "faq_cancellation_es",
		Lang:      "es",
		Questions: []string{"política de cancelación", "puedo cancelar", "política de reembolso", "cambiar mi reserva"},
		Answer:    "¡Entendemos que los planes cambian! Por favor notifíquenos lo antes posible si necesita cancelar o modificar su reserva. Apreciamos al menos 24 horas de aviso antes de su fecha programada para cancelaciones. Contáctenos para discutir su situación específica.",
		Category:  "logistics",
		Tags:      []string{"cancelación", "reembolso", "política", "cambios"},
	},
	{
		ID:        "faq_payment_methods_en",
		Lang:      "en",
		Questions: []string{"payment methods", "how do I pay", "accept credit cards", "cash or card"},
		Answer:    "We accept cash, credit/debit cards, and bank transfers. Payment is due at check-out. For extended stays, we may require a deposit at check-in. Contact us for specific payment arrangements.",
		Category:  "logistics",
		Tags:      []string{"payment", "methods", "cash", "card"},
	},
	{
		ID:        "faq_payment_methods_es",
		Lang:      "es",
		Questions: []string{"métodos de pago", "cómo pago", "aceptan tarjetas de crédito", "efectivo o tarjeta"},
		Answer:    "Aceptamos efectivo, tarjetas de crédito/débito y transferencias bancarias. El pago vence al salir. Para estadías prolongadas, podemos requerir un depósito al registrarse. Contáctenos para arreglos de pago específicos.",
		Category:  "logistics",
		Tags:      []string{"pago", "métodos", "efectivo", "tarjeta"},
	},
	{
		ID:        "faq_pricing_details_en",
		Lang:      "en",
		Questions: []string{"how much does it cost", "pricing", "rates", "cost per night", "what are your prices"},
		Answer:    "Our pricing varies by service: Hotel (Boarding) is $350 MXN per night, Daycare is $200 MXN per day. Relocation and Transport services are quoted individually. Contact us for multi-pet discounts and extended stay rates!",
		Category:  "logistics",
		Tags:      []string{"pricing", "cost", "rates", "fees"},
	},
	{
		ID:        "faq_pricing_details_es",
		Lang:      "es",
		Questions: []string{"cuánto cuesta", "precios", "tarifas", "costo por noche", "cuáles son sus precios"},
		Answer:    "Nuestros precios varían por servicio: Hotel (Hospedaje) es $350 MXN por noche, Guardería es $200 MXN por día. Los servicios de Reubicación y Transporte se cotizan individualmente. ¡Contáctenos para descuentos de múltiples mascotas y tarifas de estadía prolongada!",
		Category:  "logistics",
		Tags:      []string{"precios", "costo", "tarifas", "cuotas"},
	},
	{
		ID:        "faq_discounts_en",
		Lang:      "en",
		Questions: []string{"discounts", "multiple pets discount", "long stay discount", "special offers"},
		Answer:    "Yes! We offer discounts for multiple pets from the same family and extended stays. Ask us about our loyalty program for returning guests. Contact us for current promotions and package deals!",
		Category:  "logistics",
		Tags:      []string{"discounts", "promotions", "savings", "deals"},
	},
	{
		ID:        "faq_discounts_es",
		Lang:      "es",
		Questions: []string{"descuentos", "descuento múltiples mascotas", "descuento estadía larga", "ofertas especiales"},
		Answer:    "¡Sí! Ofrecemos descuentos para múltiples mascotas de la misma familia y estadías prolongadas. Pregúntenos sobre nuestro programa de lealtad para huéspedes recurrentes. ¡Contáctenos para promociones actuales y paquetes!",
		Category:  "logistics",
		Tags:      []string{"descuentos", "promociones", "ahorros", "ofertas"},
	},
}
